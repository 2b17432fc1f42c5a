package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// loginCredentials is the login request body.
type loginCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string  "authToken"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, "auth_login_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authToken": token})
}

// @Summary      Refresh a bearer token
// @Description  Verifies the presented token, re-reads the user and issues a fresh token.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string  "authToken"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/refresh [post]
// @Security     BearerAuth
func (h *Handler) refresh(c *gin.Context) {
	token := extractBearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing or malformed Authorization header"})
		return
	}

	fresh, err := h.services.Refresh(c.Request.Context(), token)
	if err != nil {
		h.respondError(c, "auth_refresh_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authToken": fresh})
}
