package models

import (
	"fmt"
	"time"
)

// Backup describes a server-side backup. The client only lists, creates,
// downloads and deletes them.
type Backup struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"data"`
	Description string    `json:"descricao"`
	// SizeLabel is preformatted by the server, e.g. "1.2 MB".
	SizeLabel string `json:"tamanho"`
}

// BackupRequest is the body of POST /backups.
type BackupRequest struct {
	Description string `json:"descricao"`
}

// BackupFileName is the local name a downloaded backup is saved under.
func BackupFileName(id int64) string {
	return fmt.Sprintf("backup-%d.sql", id)
}
