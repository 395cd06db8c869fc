package config

import (
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/backupsink"
	"github.com/dmitrijs2005/salesdesk/internal/client/client"
)

// Config holds runtime settings for the salesdesk CLI.
//
// Fields:
//   - BaseURL: root of the REST API, e.g. http://localhost:8080/api/v1.
//   - RequestTimeout: per-request deadline; zero disables it.
//   - RateLimit: outbound requests per second; zero disables pacing.
//   - SessionDB: SQLite file holding the credential.
//   - Ephemeral: keep the credential in memory only.
//   - BackupDir: where downloaded backups are written.
//   - S3*: when S3Bucket is set, backups go to object storage instead.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	RateLimit      float64
	SessionDB      string
	Ephemeral      bool
	BackupDir      string
	Verbose        bool

	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.SessionDB = "salesdesk.db"
	c.BackupDir = "backups"
	c.S3Region = "us-east-1"
}

// LoadConfig applies defaults, then the environment (including a .env file),
// then a JSON file, then command-line flags. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Client returns the transport settings.
func (c *Config) Client() client.Config {
	return client.Config{BaseURL: c.BaseURL, Timeout: c.RequestTimeout, RateLimit: c.RateLimit}
}

// UseS3 reports whether backups go to object storage.
func (c *Config) UseS3() bool {
	return c.S3Bucket != ""
}

func (c *Config) S3() backupsink.S3Config {
	return backupsink.S3Config{
		Bucket:    c.S3Bucket,
		Prefix:    c.S3Prefix,
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	}
}
