package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/auth"
	"github.com/dmitrijs2005/salesdesk/internal/client/backupsink"
	"github.com/dmitrijs2005/salesdesk/internal/client/dashboard"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// Deps are the collaborators the App drives. Auth is set after construction
// because the controller needs the App as its Navigator.
type Deps struct {
	Store     session.Store
	Products  services.ProductService
	Sales     services.SaleService
	Reports   services.ReportService
	Settings  services.SettingsService
	Profile   services.ProfileService
	Backups   services.BackupService
	Logs      services.LogService
	Dashboard *dashboard.Loader
	Sink      backupsink.Sink
	Log       logging.Logger
}

type App struct {
	auth      *auth.Controller
	store     session.Store
	products  services.ProductService
	sales     services.SaleService
	reports   *services.ReportView
	settings  services.SettingsService
	profile   services.ProfileService
	backups   services.BackupService
	logs      *services.LogView
	dashboard *dashboard.Loader
	sink      backupsink.Sink
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	view string
}

func NewApp(d Deps) *App {
	log := d.Log
	if log == nil {
		log = logging.Nop{}
	}
	return &App{
		store:     d.Store,
		products:  d.Products,
		sales:     d.Sales,
		reports:   services.NewReportView(d.Reports),
		settings:  d.Settings,
		profile:   d.Profile,
		backups:   d.Backups,
		logs:      services.NewLogView(d.Logs),
		dashboard: d.Dashboard,
		sink:      d.Sink,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		now:       time.Now,
		view:      "login",
	}
}

// SetAuth attaches the controller that owns the session.
func (a *App) SetAuth(c *auth.Controller) {
	a.auth = c
}

// Home implements auth.Navigator.
func (a *App) Home() {
	a.view = "home"
	fmt.Fprintln(a.out, "Logged in. Type 'dashboard' for an overview or 'help' for commands.")
}

// Login implements auth.Navigator.
func (a *App) Login() {
	a.view = "login"
	fmt.Fprintln(a.out, "Session ended. Please log in.")
}

func (a *App) isLoggedIn() bool {
	return a.auth != nil && a.auth.State() == auth.Authenticated
}

func (a *App) status() string {
	if u, ok := a.auth.User(); ok {
		name := u.Name
		if name == "" {
			name = u.Email
		}
		return fmt.Sprintf("(%s %s)", name, a.view)
	}
	return "(" + a.auth.State().String() + ")"
}

// Run restores any persisted session and then runs the REPL on stdin.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to salesdesk CLI (type 'help' for commands)")

	if err := a.auth.Start(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		a.Home()
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}
