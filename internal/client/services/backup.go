package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// BackupService drives server-side backups. Their content is opaque to the client.
type BackupService interface {
	List(ctx context.Context) ([]models.Backup, error)
	Create(ctx context.Context, description string) (models.Backup, error)
	Download(ctx context.Context, id int64) ([]byte, error)
	Delete(ctx context.Context, id int64) error
}

type backupService struct {
	r Requester
}

func NewBackupService(r Requester) BackupService {
	return &backupService{r: r}
}

func backupPath(id int64) string {
	return fmt.Sprintf("/backups/%d", id)
}

func (s *backupService) List(ctx context.Context) ([]models.Backup, error) {
	var out []models.Backup
	err := s.r.Get(ctx, "/backups", &out)
	return out, err
}

func (s *backupService) Create(ctx context.Context, description string) (models.Backup, error) {
	var out models.Backup
	err := s.r.Post(ctx, "/backups", models.BackupRequest{Description: description}, &out)
	return out, err
}

func (s *backupService) Download(ctx context.Context, id int64) ([]byte, error) {
	return s.r.Download(ctx, backupPath(id)+"/download")
}

func (s *backupService) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, backupPath(id), nil)
}
