package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"instagram-rest/internal/instagram"
)

type userInfoRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Username  string `json:"username" binding:"required"`
}

// lookupUser resolves a username to its numeric id and fetches the profile.
func lookupUser(ctx context.Context, client instagram.Client, username string) (instagram.User, error) {
	userID, err := client.UserIDFromUsername(ctx, username)
	if err != nil {
		return instagram.User{}, err
	}
	return client.UserInfo(ctx, userID)
}

func (h *Handler) publicUserInfo(c *gin.Context) {
	client, ok := h.systemClient(c)
	if !ok {
		return
	}

	user, err := lookupUser(c.Request.Context(), client, c.Param("username"))
	if err != nil {
		fail(c, "Failed to get user info", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   newPublicUserPayload(user),
	})
}

func (h *Handler) userInfo(c *gin.Context) {
	var req userInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	client, ok := h.registry.Get(req.SessionID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid session_id"})
		return
	}

	user, err := lookupUser(c.Request.Context(), client, req.Username)
	if err != nil {
		fail(c, "Failed to get user info", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   newUserPayload(user),
	})
}

// amountParam parses the amount query parameter, defaulting to 20.
func amountParam(c *gin.Context) (int, bool) {
	amount, err := strconv.Atoi(c.DefaultQuery("amount", "20"))
	if err != nil || amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid amount"})
		return 0, false
	}
	return amount, true
}

func (h *Handler) publicUserMedias(c *gin.Context) {
	client, ok := h.systemClient(c)
	if !ok {
		return
	}
	amount, ok := amountParam(c)
	if !ok {
		return
	}

	medias, err := h.userMediasFor(c, client, c.Param("username"), amount)
	if err != nil {
		fail(c, "Failed to get medias", err)
		return
	}

	payload := make([]mediaItemWithTimePayload, 0, len(medias))
	for _, m := range medias {
		payload = append(payload, mediaItemWithTimePayload{
			mediaItemPayload: newMediaItemPayload(m),
			TakenAt:          timestamp(m.TakenAt),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(medias),
		"medias": payload,
	})
}

func (h *Handler) userMedias(c *gin.Context) {
	client, ok := sessionClient(c)
	if !ok {
		return
	}
	amount, ok := amountParam(c)
	if !ok {
		return
	}

	medias, err := h.userMediasFor(c, client, c.Param("username"), amount)
	if err != nil {
		fail(c, "Failed to get medias", err)
		return
	}

	payload := make([]mediaItemPayload, 0, len(medias))
	for _, m := range medias {
		payload = append(payload, newMediaItemPayload(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(medias),
		"medias": payload,
	})
}

func (h *Handler) userMediasFor(c *gin.Context, client instagram.Client, username string, amount int) ([]instagram.Media, error) {
	ctx := c.Request.Context()
	userID, err := client.UserIDFromUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return client.UserMedias(ctx, userID, amount)
}
