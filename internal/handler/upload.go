package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// photoUpload writes the multipart payload to a scoped temporary file,
// hands it to the capability, and removes the file on every exit path.
func (h *Handler) photoUpload(c *gin.Context) {
	client, ok := sessionClient(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}

	tempPath := filepath.Join(h.tempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Photo upload failed: " + err.Error(),
		})
		return
	}
	defer os.Remove(tempPath)

	media, err := client.PhotoUpload(c.Request.Context(), tempPath, c.Query("caption"))
	if err != nil {
		fail(c, "Photo upload failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"media": gin.H{
			"pk":   media.Pk,
			"id":   media.ID,
			"code": media.Code,
		},
	})
}
