package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// publicMediaInfo fetches media detail by numeric id or shortcode. Numeric
// parse is attempted first; anything else resolves through a shortcode
// lookup before the fetch.
func (h *Handler) publicMediaInfo(c *gin.Context) {
	client, ok := h.systemClient(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	raw := c.Param("media_id")
	mediaPK, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		mediaPK, err = client.MediaPKFromCode(ctx, raw)
		if err != nil {
			fail(c, "Failed to get media info", err)
			return
		}
	}

	media, err := client.MediaInfo(ctx, mediaPK)
	if err != nil {
		fail(c, "Failed to get media info", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"media":  newMediaDetailPayload(media),
	})
}

func (h *Handler) likeMedia(c *gin.Context) {
	client, ok := sessionClient(c)
	if !ok {
		return
	}

	liked, err := client.MediaLike(c.Request.Context(), c.Param("media_id"))
	if err != nil {
		fail(c, "Failed to like media", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"liked":  liked,
	})
}

func (h *Handler) commentMedia(c *gin.Context) {
	client, ok := sessionClient(c)
	if !ok {
		return
	}

	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "text is required"})
		return
	}

	comment, err := client.MediaComment(c.Request.Context(), c.Param("media_id"), text)
	if err != nil {
		fail(c, "Failed to comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"comment": gin.H{
			"pk":   comment.Pk,
			"text": comment.Text,
		},
	})
}
