package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest is an exported model for Swagger docs of the
// create/update payload.
type CreateUserRequest struct {
	Username string `json:"username" example:"exampleUser"`
	Email    string `json:"email" example:"example@user.com"`
	Password string `json:"password" example:"examplePass"`
}

// bindPayload reads the body into a raw JSON object so the validation
// rules can check field presence and types themselves.
func (h *Handler) bindPayload(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		if h.log != nil {
			h.log.Infow("user_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "request body must be a JSON object"})
		return nil, false
	}
	return payload, true
}

// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  CreateUserRequest  true  "New user"
// @Success      201  {object}  models.PublicUser
// @Failure      400  {object}  map[string]string  "duplicate username"
// @Failure      422  {object}  map[string]string  "validation failure"
// @Router       /api/user [post]
func (h *Handler) createUser(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	user, err := h.services.Create(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, "user_create_failed", err)
		return
	}

	c.Header("Location", "/api/user/"+user.ID)
	c.JSON(http.StatusCreated, user)
}

// @Summary      List users
// @Tags         user
// @Produce      json
// @Success      200  {array}  models.PublicUser
// @Router       /api/user [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "user_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get a user by id
// @Tags         user
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      200  {object}  models.PublicUser
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user/{userId} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	user, err := h.services.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.respondError(c, "user_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Update a user by id
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        userId  path  string             true  "User id"
// @Param        body    body  CreateUserRequest  true  "Fields to update (all optional)"
// @Success      200  {object}  models.PublicUser
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/user/{userId} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	user, err := h.services.Update(c.Request.Context(), c.Param("userId"), payload)
	if err != nil {
		h.respondError(c, "user_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Delete a user by id
// @Tags         user
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      204  "deleted (or nothing to delete)"
// @Router       /api/user/{userId} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	if _, err := h.services.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		h.respondError(c, "user_delete_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
