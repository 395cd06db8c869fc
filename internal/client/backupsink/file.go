package backupsink

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/salesdesk/internal/filex"
)

// FileSink writes backups into a directory, creating it on first use.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid backup file name %q", name)
	}

	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}

	return filex.WriteFileAtomic(dir, name, data)
}
