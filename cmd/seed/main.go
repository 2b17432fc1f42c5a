// Command seed populates the user table with a few sample accounts for
// local development. Existing usernames are skipped.
package main

import (
	"context"
	"errors"

	"github.com/Csprier/marvel-server/internal/config"
	"github.com/Csprier/marvel-server/internal/logger"
	"github.com/Csprier/marvel-server/internal/repository"
	"github.com/Csprier/marvel-server/internal/repository/db"
	"github.com/Csprier/marvel-server/internal/service"
)

var seedUsers = []map[string]any{
	{"username": "exampleUser", "email": "example@user.com", "password": "examplePass"},
	{"username": "peterParker", "email": "peter@dailybugle.com", "password": "withGreatPower1"},
	{"username": "tonyStark", "email": "tony@starkindustries.com", "password": "iAmIronMan3000"},
}

func main() {
	log := logger.Get(logger.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("error loading config", "err", err)
	}

	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() { _ = conn.Close() }()

	repos := repository.NewRepository(conn)
	users := service.NewUserService(repos.Users)

	ctx := context.Background()
	for _, payload := range seedUsers {
		created, err := users.Create(ctx, payload)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				log.Infow("user already seeded", "username", payload["username"])
				continue
			}
			log.Fatalw("failed to seed user", "username", payload["username"], "err", err)
		}
		log.Infow("seeded user", "id", created.ID, "username", created.Username)
	}
}
