package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/flagx"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment variable read by the CLI.
const EnvPrefix = "SALESDESK_"

const defaultEnvFile = ".env"

// readEnv returns the SALESDESK_ variables from the dotenv file overlaid by
// the process environment. An explicit -env file must exist; the default
// ./.env is optional.
func readEnv(args []string) (map[string]string, error) {
	vars := map[string]string{}

	path := flagx.EnvFileFlag(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	fileVars, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range fileVars {
			vars[k] = v
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return vars, nil
}

func parseEnv(cfg *Config, args []string) error {
	vars, err := readEnv(args)
	if err != nil {
		return err
	}

	get := func(name string) (string, bool) {
		v, ok := vars[EnvPrefix+name]
		return v, ok && v != ""
	}

	strs := map[string]*string{
		"BASE_URL":      &cfg.BaseURL,
		"SESSION_DB":    &cfg.SessionDB,
		"BACKUP_DIR":    &cfg.BackupDir,
		"S3_BUCKET":     &cfg.S3Bucket,
		"S3_PREFIX":     &cfg.S3Prefix,
		"S3_REGION":     &cfg.S3Region,
		"S3_ENDPOINT":   &cfg.S3Endpoint,
		"S3_ACCESS_KEY": &cfg.S3AccessKey,
		"S3_SECRET_KEY": &cfg.S3SecretKey,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	if v, ok := get("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := get("RATE_LIMIT"); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT: %w", EnvPrefix, err)
		}
		cfg.RateLimit = r
	}
	for name, dst := range map[string]*bool{"VERBOSE": &cfg.Verbose, "EPHEMERAL": &cfg.Ephemeral} {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = b
		}
	}

	return nil
}
