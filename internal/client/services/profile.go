package services

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type ProfileService interface {
	Get(ctx context.Context) (models.User, error)
	// Update returns the user as the server stored it.
	Update(ctx context.Context, in models.ProfileInput) (models.User, error)
}

type profileService struct {
	r Requester
}

func NewProfileService(r Requester) ProfileService {
	return &profileService{r: r}
}

func (s *profileService) Get(ctx context.Context) (models.User, error) {
	var out models.User
	err := s.r.Get(ctx, "/usuarios/perfil", &out)
	return out, err
}

func (s *profileService) Update(ctx context.Context, in models.ProfileInput) (models.User, error) {
	var out models.User
	err := s.r.Put(ctx, "/usuarios/perfil", in, &out)
	return out, err
}
