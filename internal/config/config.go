package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8000"`

	InstagramUsername string `env:"INSTAGRAM_USERNAME"`
	InstagramPassword string `env:"INSTAGRAM_PASSWORD"`

	SessionFile   string `env:"SESSION_FILE" envDefault:"/app/session.json"`
	UploadTempDir string `env:"UPLOAD_TEMP_DIR"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if cfg.UploadTempDir == "" {
		cfg.UploadTempDir = os.TempDir()
	}

	return cfg, nil
}
