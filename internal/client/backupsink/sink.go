// Package backupsink stores downloaded backups locally or in S3-compatible
// object storage.
package backupsink

import "context"

// Sink persists one backup file and reports where it went.
type Sink interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
