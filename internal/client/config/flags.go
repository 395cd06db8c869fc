package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/flagx"
)

var ownFlags = []string{"-a", "-t", "-r", "-db", "-b", "-v", "-ephemeral"}

// parseFlags populates Config fields from command-line flags. Arguments that
// belong to other parsers (-c, -env) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, ownFlags)

	fs := flag.NewFlagSet("salesdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the REST API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "outbound requests per second (0 = unlimited)")
	fs.StringVar(&cfg.SessionDB, "db", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "backup download directory")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	fs.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "keep the session in memory only")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// only an explicit -t replaces a sub-second value from env or JSON
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
