package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instagram-rest/internal/instagram"
)

// fail maps a capability error to an HTTP response. Authentication-phase
// errors get distinct status codes; everything else is a 500 carrying the
// upstream message prefixed by the operation description.
func fail(c *gin.Context, prefix string, err error) {
	switch instagram.Classify(err) {
	case instagram.KindLoginRequired:
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail": "Login required: " + err.Error(),
		})
	case instagram.KindChallengeRequired:
		c.JSON(http.StatusForbidden, gin.H{
			"detail": "Challenge required: " + err.Error(),
		})
	case instagram.KindRateLimited, instagram.KindUpstream:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": prefix + ": " + err.Error(),
		})
	}
}
