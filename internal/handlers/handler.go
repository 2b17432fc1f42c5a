package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Csprier/marvel-server/internal/config"
	"github.com/Csprier/marvel-server/internal/logger"
	"github.com/Csprier/marvel-server/internal/service"
)

// Handler wires HTTP layer to services, config and logging.
type Handler struct {
	services *service.Service
	cfg      *config.Config
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{services: services, cfg: cfg, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger())
	router.Use(h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerAuthRoutes(api)
		h.registerUserRoutes(api)

		// Demo endpoint kept from the original deployment.
		api.GET("/protected", h.bearerAuth, h.protected)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	user := api.Group("/user")
	{
		user.POST("", h.createUser)
		// Unauthenticated listing mirrors the original deployment's
		// known design gap.
		user.GET("", h.listUsers)
		user.GET("/:userId", h.bearerAuth, h.getUser)
		user.PUT("/:userId", h.bearerAuth, h.updateUser)
		user.DELETE("/:userId", h.deleteUser)
	}
}

// corsMiddleware restricts cross-origin access to the configured
// client address.
func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{h.cfg.ClientOrigin}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Protected demo resource
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/protected [get]
// @Security     BearerAuth
func (h *Handler) protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": "rosebud"})
}
