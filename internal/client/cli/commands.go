package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/auth"
	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/common"
)

type command struct {
	name          string
	usage         string
	needsSession  bool
	anonymousOnly bool
	run           func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "login", usage: "login [email]", anonymousOnly: true, run: (*App).loginCmd},
	{name: "logout", usage: "logout", needsSession: true, run: (*App).logoutCmd},
	{name: "whoami", usage: "whoami", needsSession: true, run: (*App).whoamiCmd},
	{name: "dashboard", usage: "dashboard", needsSession: true, run: (*App).dashboardCmd},

	{name: "products", usage: "products", needsSession: true, run: (*App).productsCmd},
	{name: "product-add", usage: "product-add", needsSession: true, run: (*App).productAddCmd},
	{name: "product-edit", usage: "product-edit <id>", needsSession: true, run: (*App).productEditCmd},
	{name: "product-delete", usage: "product-delete <id>", needsSession: true, run: (*App).productDeleteCmd},

	{name: "sales", usage: "sales", needsSession: true, run: (*App).salesCmd},
	{name: "sale-add", usage: "sale-add", needsSession: true, run: (*App).saleAddCmd},
	{name: "sale-edit", usage: "sale-edit <id>", needsSession: true, run: (*App).saleEditCmd},
	{name: "sale-delete", usage: "sale-delete <id>", needsSession: true, run: (*App).saleDeleteCmd},
	{name: "sales-by-client", usage: "sales-by-client <client>", needsSession: true, run: (*App).salesByClientCmd},
	{name: "sales-by-period", usage: "sales-by-period <YYYY-MM-DD> <YYYY-MM-DD>", needsSession: true, run: (*App).salesByPeriodCmd},

	{name: "report", usage: "report [period=diario|semanal|mensal] [from=YYYY-MM-DD] [to=YYYY-MM-DD]", needsSession: true, run: (*App).reportCmd},
	{name: "logs", usage: "logs [level=info|warning|error] [from=YYYY-MM-DD] [to=YYYY-MM-DD] [search words]", needsSession: true, run: (*App).logsCmd},

	{name: "settings", usage: "settings", needsSession: true, run: (*App).settingsCmd},
	{name: "settings-edit", usage: "settings-edit", needsSession: true, run: (*App).settingsEditCmd},
	{name: "profile", usage: "profile", needsSession: true, run: (*App).profileCmd},
	{name: "profile-edit", usage: "profile-edit", needsSession: true, run: (*App).profileEditCmd},

	{name: "backups", usage: "backups", needsSession: true, run: (*App).backupsCmd},
	{name: "backup-create", usage: "backup-create [description]", needsSession: true, run: (*App).backupCreateCmd},
	{name: "backup-download", usage: "backup-download <id>", needsSession: true, run: (*App).backupDownloadCmd},
	{name: "backup-delete", usage: "backup-delete <id>", needsSession: true, run: (*App).backupDeleteCmd},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func helpText(loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commands {
		if c.needsSession != loggedIn {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", c.usage)
	}
	b.WriteString("  help\n  exit")
	return b.String()
}

func (a *App) exec(ctx context.Context, name string, args []string) error {
	c, ok := lookup(name)
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	return c.run(a, ctx, args)
}

// describeError turns an error into a one-line notice for the user.
func describeError(err error) string {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, auth.ErrAuthentication) && errors.As(err, &apiErr):
		return "login failed: " + apiErr.Message
	case errors.Is(err, auth.ErrAuthentication):
		return "login failed"
	case errors.Is(err, client.ErrUnauthorized):
		return "your session has expired, please log in again"
	case errors.As(err, &apiErr) && errors.Is(err, client.ErrValidation):
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, common.ErrorInvalidInput):
		return err.Error()
	default:
		return err.Error()
	}
}

// requireArg returns args[0] or prompts for it.
func (a *App) requireArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) confirm(prompt string) (bool, error) {
	ans, err := getSimpleText(a.reader, prompt+" [y/N]", a.out)
	if err != nil {
		return false, err
	}
	ans = strings.ToLower(ans)
	return ans == "y" || ans == "yes" || ans == "s" || ans == "sim", nil
}
