// Package auth owns the session state of the client: who is logged in, and
// where the user is sent when that changes.
//
// The Controller and the HTTP client's 401 path are the only writers of the
// stored credential.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// ErrAuthentication is returned when login did not produce a session.
var ErrAuthentication = errors.New("authentication failed")

type State int

const (
	Unknown State = iota
	Authenticating
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Navigator moves the user between the home and login views.
type Navigator interface {
	Home()
	Login()
}

// DefaultLogoutTimeout bounds the best-effort logout notification.
const DefaultLogoutTimeout = 3 * time.Second

type Controller struct {
	api   services.AuthAPI
	store session.Store
	nav   Navigator
	log   logging.Logger

	LogoutTimeout time.Duration

	mu    sync.RWMutex
	state State
	user  models.User
}

func NewController(api services.AuthAPI, store session.Store, nav Navigator, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop{}
	}
	return &Controller{
		api:           api,
		store:         store,
		nav:           nav,
		log:           log,
		LogoutTimeout: DefaultLogoutTimeout,
		state:         Unknown,
	}
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// User returns the current user; ok is false unless Authenticated.
func (c *Controller) User() (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != Authenticated {
		return models.User{}, false
	}
	return c.user, true
}

func (c *Controller) set(state State, user models.User) {
	c.mu.Lock()
	c.state, c.user = state, user
	c.mu.Unlock()
}

// Start restores a persisted session. With a stored credential it asks the
// server who the user is; any failure drops the credential.
func (c *Controller) Start(ctx context.Context) error {
	_, ok, err := c.store.Get(ctx)
	if err != nil {
		c.set(Anonymous, models.User{})
		return fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		c.set(Anonymous, models.User{})
		return nil
	}

	c.set(Authenticating, models.User{})

	user, err := c.api.Me(ctx)
	if err != nil {
		c.log.Warn(ctx, "stored session rejected", "error", err)
		if err := c.store.Clear(ctx); err != nil {
			c.log.Error(ctx, "failed to clear credential", "error", err)
		}
		c.set(Anonymous, models.User{})
		return nil
	}

	c.set(Authenticated, user)
	c.log.Info(ctx, "session restored", "user_id", user.ID)
	return nil
}

// Login authenticates and, on success, persists the credential and moves to
// the home view. On failure the controller stays Anonymous.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		c.set(Anonymous, models.User{})
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if resp.Token == "" {
		c.set(Anonymous, models.User{})
		return fmt.Errorf("%w: server returned no token", ErrAuthentication)
	}

	if err := c.store.Set(ctx, resp.Token); err != nil {
		c.set(Anonymous, models.User{})
		return fmt.Errorf("save credential: %w", err)
	}

	c.set(Authenticated, resp.User)
	c.log.Info(ctx, "logged in", "user_id", resp.User.ID)
	c.nav.Home()
	return nil
}

// Logout notifies the server, then drops the session locally. The outcome of
// the notification is logged and otherwise ignored.
func (c *Controller) Logout(ctx context.Context) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.LogoutTimeout)
	if err := c.api.Logout(nctx); err != nil {
		c.log.Warn(ctx, "logout notification failed", "error", err)
	}
	cancel()

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credential", "error", err)
	}

	if c.toAnonymous() {
		c.nav.Login()
	}
}

// SessionLost is the HTTP client's 401 hook. The client has already cleared
// the credential. Repeated calls navigate once.
func (c *Controller) SessionLost(ctx context.Context) {
	if c.toAnonymous() {
		c.log.Info(ctx, "session lost")
		c.nav.Login()
	}
}

// toAnonymous reports whether the state actually changed.
func (c *Controller) toAnonymous() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Anonymous {
		return false
	}
	c.state, c.user = Anonymous, models.User{}
	return true
}

// UpdateUser replaces the held user, typically with a profile update
// response. The credential is not re-validated.
func (c *Controller) UpdateUser(user models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Authenticated {
		c.user = user
	}
}
