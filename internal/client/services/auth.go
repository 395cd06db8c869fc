package services

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// AuthAPI covers the /auth endpoints.
//
// Contract:
//   - Login: exchange credentials for a token and the user it belongs to.
//   - Logout: tell the server the session ended. Callers treat it as best effort.
//   - Me: fetch the user behind the current credential.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)
}

type authAPI struct {
	r Requester
}

func NewAuthAPI(r Requester) AuthAPI {
	return &authAPI{r: r}
}

func (a *authAPI) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := a.r.Post(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

func (a *authAPI) Logout(ctx context.Context) error {
	return a.r.Post(ctx, "/auth/logout", nil, nil)
}

func (a *authAPI) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := a.r.Get(ctx, "/auth/me", &u)
	return u, err
}
