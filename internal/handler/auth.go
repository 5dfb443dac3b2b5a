package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	SessionID string `json:"session_id"`
}

// login authenticates against Instagram and registers the client under a
// fresh session id. A known session_id in the request short-circuits to the
// existing session.
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	if req.SessionID != "" {
		if client, ok := h.registry.Get(req.SessionID); ok {
			c.JSON(http.StatusOK, gin.H{
				"status":     "success",
				"session_id": req.SessionID,
				"user_id":    client.UserID(),
				"message":    "Session reused",
			})
			return
		}
	}

	client := h.factory()
	if err := client.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		fail(c, "Login failed", err)
		return
	}

	sessionID := h.registry.Create(client)

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"session_id": sessionID,
		"user_id":    client.UserID(),
		"message":    "Login successful",
	})
}

// deleteSession removes a session from the registry.
func (h *Handler) deleteSession(c *gin.Context) {
	if !h.registry.Delete(c.Param("session_id")) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session removed",
	})
}
