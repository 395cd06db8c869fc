package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/salesdesk/internal/flagx"
	"github.com/dmitrijs2005/salesdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from "zero".
type JsonConfig struct {
	BaseURL        *string         `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	RateLimit      *float64        `json:"rate_limit"`
	SessionDB      *string         `json:"session_db"`
	BackupDir      *string         `json:"backup_dir"`
	Verbose        *bool           `json:"verbose"`
	S3             *JsonS3Config   `json:"s3"`
}

type JsonS3Config struct {
	Bucket    string `json:"bucket"`
	Prefix    string `json:"prefix"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.BaseURL, jc.BaseURL)
	setIf(&cfg.RateLimit, jc.RateLimit)
	setIf(&cfg.SessionDB, jc.SessionDB)
	setIf(&cfg.BackupDir, jc.BackupDir)
	setIf(&cfg.Verbose, jc.Verbose)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}

	if s := jc.S3; s != nil {
		cfg.S3Bucket = s.Bucket
		cfg.S3Prefix = s.Prefix
		if s.Region != "" {
			cfg.S3Region = s.Region
		}
		cfg.S3Endpoint = s.Endpoint
		cfg.S3AccessKey = s.AccessKey
		cfg.S3SecretKey = s.SecretKey
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
