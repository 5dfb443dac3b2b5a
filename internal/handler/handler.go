package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instagram-rest/internal/bootstrap"
	"instagram-rest/internal/instagram"
	"instagram-rest/internal/middleware"
	"instagram-rest/internal/session"
)

type Handler struct {
	factory  instagram.Factory
	registry *session.Registry
	system   *bootstrap.Bootstrapper
	tempDir  string
}

func NewHandler(
	factory instagram.Factory,
	registry *session.Registry,
	system *bootstrap.Bootstrapper,
	tempDir string,
) *Handler {
	return &Handler{
		factory:  factory,
		registry: registry,
		system:   system,
		tempDir:  tempDir,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/health", h.health)

	r.POST("/auth/login", h.login)
	r.DELETE("/session/:session_id", h.deleteSession)

	r.GET("/public/user/:username", h.publicUserInfo)
	r.GET("/public/user/:username/medias", h.publicUserMedias)
	r.GET("/public/media/:media_id", h.publicMediaInfo)

	r.POST("/user/info", h.userInfo)

	requireSession := middleware.RequireSession(h.registry)
	r.POST("/user/:username/medias", requireSession, h.userMedias)
	r.POST("/photo/upload", requireSession, h.photoUpload)
	r.POST("/media/:media_id/like", requireSession, h.likeMedia)
	r.POST("/media/:media_id/comment", requireSession, h.commentMedia)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":              "Instagram REST API",
		"docs":                 "/docs",
		"status":               "running",
		"system_client_active": h.system.Active(),
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":               "healthy",
		"system_client_active": h.system.Active(),
	})
}

// systemClient resolves the system client for public routes, failing the
// request with the fixed service-unavailable response when it is absent.
func (h *Handler) systemClient(c *gin.Context) (instagram.Client, bool) {
	client, ok := h.system.Client()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": bootstrap.UnavailableMessage,
		})
		return nil, false
	}
	return client, true
}

// sessionClient extracts the client resolved by the session middleware.
func sessionClient(c *gin.Context) (instagram.Client, bool) {
	client, ok := middleware.SessionClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid session_id"})
		return nil, false
	}
	return client, true
}
