package services

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, in models.Settings) (models.Settings, error)
}

type settingsService struct {
	r Requester
}

func NewSettingsService(r Requester) SettingsService {
	return &settingsService{r: r}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	var out models.Settings
	err := s.r.Get(ctx, "/configuracoes", &out)
	return out, err
}

func (s *settingsService) Update(ctx context.Context, in models.Settings) (models.Settings, error) {
	var out models.Settings
	err := s.r.Put(ctx, "/configuracoes", in, &out)
	return out, err
}
