package handlers

import (
	"net/http"

	"playlist_manager/internal/logger"
	"playlist_manager/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// maxBodyBytes caps JSON request bodies (the original API allowed 2mb).
const maxBodyBytes = 2 << 20

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	staticDir string
}

// NewHandler constructs a new HTTP handler with dependencies. staticDir may
// be empty to disable frontend serving (tests do this).
func NewHandler(services *service.Service, log *logger.Logger, staticDir string) *Handler {
	return &Handler{services: services, log: log, staticDir: staticDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/ping", h.ping)

	api := router.Group("/api", limitRequestBody)
	{
		// Token producers, no auth gate.
		api.POST("/register", h.register)
		api.POST("/login", h.login)

		authed := api.Group("", h.identityMiddleware)
		{
			authed.GET("/me", h.me)
			h.registerPlaylistRoutes(authed)
		}
	}

	// Live library feed (HTTP upgrade), same port, token via query.
	router.GET("/ws", h.wsLibrary)

	// Static frontend for everything the API doesn't claim.
	if h.staticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(h.staticDir))))
	}

	return router
}

func (h *Handler) registerPlaylistRoutes(g *gin.RouterGroup) {
	pl := g.Group("/playlists")
	{
		pl.GET("", h.listPlaylists)
		pl.POST("", h.createPlaylist)
		pl.GET("/:id", h.getPlaylist)
		pl.PUT("/:id", h.renamePlaylist)
		pl.DELETE("/:id", h.deletePlaylist)

		pl.POST("/:id/songs", h.addSong)
		pl.DELETE("/:id/songs", h.clearSongs)
		pl.DELETE("/:id/songs/:songId", h.deleteSong)
	}
}

// limitRequestBody rejects oversized payloads before JSON binding sees them.
func limitRequestBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	c.Next()
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string  "pong"
// @Router       /ping [get]
func (h *Handler) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
