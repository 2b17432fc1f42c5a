package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Csprier/marvel-server/internal/repository"
	"github.com/Csprier/marvel-server/internal/service"
	"github.com/Csprier/marvel-server/internal/validation"
)

const internalErrorMessage = "Internal Server Error"

// mapError translates domain errors into an HTTP status and a
// client-facing message. Unknown errors become a generic 500.
func mapError(err error) (int, string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, verr.Error()
	case errors.Is(err, repository.ErrDuplicateUsername):
		return http.StatusBadRequest, "The username already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrTokenExpired), errors.Is(err, service.ErrTokenInvalid):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// respondError writes the mapped error response. Server faults are
// logged with full detail; the client only ever sees the generic
// message, except in development mode where the underlying error is
// attached for debugging (the original's NODE_ENV gate).
func (h *Handler) respondError(c *gin.Context, logKey string, err error) {
	status, msg := mapError(err)

	if h.log != nil {
		if status >= http.StatusInternalServerError {
			h.log.Errorw(logKey, "err", err)
		} else {
			h.log.Infow(logKey, "err", err)
		}
	}

	body := gin.H{"message": msg}
	if h.cfg != nil && h.cfg.IsDevelopment() {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
