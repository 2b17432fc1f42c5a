package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Csprier/marvel-server/internal/config"
	"github.com/Csprier/marvel-server/internal/models"
	"github.com/Csprier/marvel-server/internal/service"
)

// ---- Service Mocks ----

type mockUsers struct {
	createUser models.PublicUser
	createErr  error
	updateUser models.PublicUser
	updateErr  error
	getUser    models.PublicUser
	getErr     error
	listResp   []models.PublicUser
	listErr    error
	deleteOK   bool
	deleteErr  error

	lastCreatePayload map[string]any
	lastUpdateID      string
	lastUpdatePayload map[string]any
	lastGetID         string
	lastDeleteID      string
}

func (m *mockUsers) Create(_ context.Context, payload map[string]any) (models.PublicUser, error) {
	m.lastCreatePayload = payload
	return m.createUser, m.createErr
}

func (m *mockUsers) Update(_ context.Context, id string, payload map[string]any) (models.PublicUser, error) {
	m.lastUpdateID = id
	m.lastUpdatePayload = payload
	return m.updateUser, m.updateErr
}

func (m *mockUsers) GetByID(_ context.Context, id string) (models.PublicUser, error) {
	m.lastGetID = id
	return m.getUser, m.getErr
}

func (m *mockUsers) List(_ context.Context) ([]models.PublicUser, error) {
	return m.listResp, m.listErr
}

func (m *mockUsers) Delete(_ context.Context, id string) (bool, error) {
	m.lastDeleteID = id
	return m.deleteOK, m.deleteErr
}

type mockAuth struct {
	loginToken   string
	loginErr     error
	refreshToken string
	refreshErr   error
	parseClaims  *service.Claims
	parseErr     error

	lastLoginUsername string
	lastLoginPassword string
	lastRefreshToken  string
	lastParseToken    string
}

func (m *mockAuth) Login(_ context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) Refresh(_ context.Context, token string) (string, error) {
	m.lastRefreshToken = token
	return m.refreshToken, m.refreshErr
}

func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}

// ---- Shared Test Helpers ----

func testConfig() *config.Config {
	return &config.Config{
		Port:         "8080",
		ClientOrigin: "http://localhost:3000",
		Env:          config.EnvTest,
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, testConfig(), nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
