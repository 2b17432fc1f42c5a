package service

import (
	"context"

	"github.com/Csprier/marvel-server/internal/models"
	"github.com/Csprier/marvel-server/internal/repository"
)

// mockUsers is a lightweight in-test mock for repository.Users.
type mockUsers struct {
	FindByUsernameFn func(username string) (*models.User, error)
	FindByIDFn       func(id string) (*models.User, error)
	ListFn           func() ([]models.User, error)
	InsertFn         func(u models.User) (*models.User, error)
	UpdateByIDFn     func(id string, upd repository.UserUpdate) (*models.User, error)
	DeleteByIDFn     func(id string) (bool, error)

	insertCalls []models.User
	updateCalls []repository.UserUpdate
	findCalls   []string
}

func (m *mockUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.findCalls = append(m.findCalls, username)
	if m.FindByUsernameFn == nil {
		return nil, nil
	}
	return m.FindByUsernameFn(username)
}

func (m *mockUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	if m.FindByIDFn == nil {
		return nil, nil
	}
	return m.FindByIDFn(id)
}

func (m *mockUsers) List(_ context.Context) ([]models.User, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn()
}

func (m *mockUsers) Insert(_ context.Context, u models.User) (*models.User, error) {
	m.insertCalls = append(m.insertCalls, u)
	return m.InsertFn(u)
}

func (m *mockUsers) UpdateByID(_ context.Context, id string, upd repository.UserUpdate) (*models.User, error) {
	m.updateCalls = append(m.updateCalls, upd)
	return m.UpdateByIDFn(id, upd)
}

func (m *mockUsers) DeleteByID(_ context.Context, id string) (bool, error) {
	return m.DeleteByIDFn(id)
}
