// Package config loads runtime configuration for the salesdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed SALESDESK_, merged over an optional
//     dotenv file (-env path, or ./.env when present). Real environment
//     variables win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     base URL of the REST API
//	-t int        request timeout (seconds)
//	-r float      outbound request rate limit (requests/second, 0 = off)
//	-db string    session database file
//	-b string     backup download directory
//	-v            verbose (debug) logging
//	-ephemeral    keep the session in memory only
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "15s" or
// integer nanoseconds. Absent keys leave earlier values untouched:
//
//	{
//	  "base_url": "http://localhost:8080/api/v1",
//	  "request_timeout": "15s",
//	  "rate_limit": 5,
//	  "session_db": "salesdesk.db",
//	  "backup_dir": "backups",
//	  "s3": {"bucket": "vault", "endpoint": "http://localhost:9000"}
//	}
package config
