package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"instagram-rest/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewAndShutdown(t *testing.T) {
	cfg := config.Config{
		AppPort:       "0",
		SessionFile:   filepath.Join(t.TempDir(), "session.json"),
		UploadTempDir: t.TempDir(),
	}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	require.Nil(t, a.cleanup, "no cleanup is registered without external connections")

	require.NoError(t, a.Shutdown(context.Background()))
}
