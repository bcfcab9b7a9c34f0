package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Recommender backend
	APIBaseURL     string `envconfig:"API_BASE_URL" default:"http://localhost:8000"`
	HTTPTimeoutSec int    `envconfig:"HTTP_TIMEOUT_SEC" default:"30"`

	// Result view
	PageSize         int `envconfig:"PAGE_SIZE" default:"8"`
	SuccessFlashMsec int `envconfig:"SUCCESS_FLASH_MSEC" default:"1200"`

	// SFTP upload of exported files (cmd/exportcsv -sftp)
	SFTPHost      string `envconfig:"SFTP_HOST"`
	SFTPPort      int    `envconfig:"SFTP_PORT" default:"22"`
	SFTPUser      string `envconfig:"SFTP_USER"`
	SFTPPass      string `envconfig:"SFTP_PASS"`
	SFTPRemoteDir string `envconfig:"SFTP_REMOTE_DIR" default:"/"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
