package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"instagram-rest/internal/bootstrap"
	"instagram-rest/internal/config"
	"instagram-rest/internal/handler"
	"instagram-rest/internal/instagram/goinsta"
	"instagram-rest/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	registry := session.NewRegistry()

	system := bootstrap.New(
		goinsta.New,
		cfg.InstagramUsername,
		cfg.InstagramPassword,
		cfg.SessionFile,
	)
	system.Run(ctx)

	apiHandler := handler.NewHandler(
		goinsta.New,
		registry,
		system,
		cfg.UploadTempDir,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	apiHandler.RegisterRoutes(router)

	// Nothing here owns a connection that needs closing on shutdown.
	return router, nil, nil
}
