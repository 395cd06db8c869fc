package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
)

func (a *App) loginCmd(ctx context.Context, args []string) error {
	email, err := a.requireArg(args, "Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	return a.auth.Login(ctx, email, password)
}

func (a *App) logoutCmd(ctx context.Context, _ []string) error {
	a.auth.Logout(ctx)
	return nil
}

func (a *App) whoamiCmd(ctx context.Context, _ []string) error {
	u, _ := a.auth.User()
	fmt.Fprintf(a.out, "User:  #%d %s <%s>\n", u.ID, u.Name, u.Email)

	token, ok, err := a.store.Get(ctx)
	if err != nil || !ok {
		return err
	}

	if ts, ok := a.store.(session.Timestamped); ok {
		if at, ok, err := ts.SavedAt(ctx); err == nil && ok {
			fmt.Fprintf(a.out, "Saved: %s\n", localTime(at))
		}
	}

	info, err := session.Inspect(token)
	if err != nil {
		fmt.Fprintln(a.out, "Token: opaque")
		return nil
	}
	if info.Role != "" {
		fmt.Fprintf(a.out, "Role:  %s\n", info.Role)
	}
	if info.ExpiresAt != nil {
		state := "valid"
		if info.Expired(a.now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token: expires %s (%s)\n", localTime(*info.ExpiresAt), state)
	}
	return nil
}

func (a *App) profileCmd(ctx context.Context, _ []string) error {
	u, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}
	printUser(a, u)
	return nil
}

func printUser(a *App, u models.User) {
	fmt.Fprintf(a.out, "ID:    %d\nName:  %s\nEmail: %s\n", u.ID, u.Name, u.Email)
	if u.Photo != "" {
		fmt.Fprintf(a.out, "Photo: %s\n", u.Photo)
	}
}

// profileEditCmd sends the full profile. Empty answers keep current values;
// the password is sent only when a new one is typed.
func (a *App) profileEditCmd(ctx context.Context, _ []string) error {
	cur, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}

	in := models.ProfileInput{Name: cur.Name, Email: cur.Email, Photo: cur.Photo}
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Name", &in.Name},
		{"Email", &in.Email},
		{"Photo", &in.Photo},
	} {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, *f.dst), a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	fmt.Fprintln(a.out, "New password (leave empty to keep)")
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = pw

	updated, err := a.profile.Update(ctx, in)
	if err != nil {
		return err
	}
	a.auth.UpdateUser(updated)
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) settingsCmd(ctx context.Context, _ []string) error {
	s, err := a.settings.Get(ctx)
	if err != nil {
		return err
	}
	table(a.out, [][]any{
		{"Company", s.CompanyName},
		{"Tax ID", s.TaxID},
		{"Address", s.Address},
		{"Phone", s.Phone},
		{"Email", s.Email},
		{"Logo", s.Logo},
		{"Theme", s.Theme},
		{"Notifications", s.Notifications},
		{"Auto backup", s.AutoBackup},
		{"Backup interval (h)", s.BackupInterval},
	})
	return nil
}

func (a *App) settingsEditCmd(ctx context.Context, _ []string) error {
	s, err := a.settings.Get(ctx)
	if err != nil {
		return err
	}

	texts := []struct {
		label string
		dst   *string
	}{
		{"Company", &s.CompanyName},
		{"Tax ID", &s.TaxID},
		{"Address", &s.Address},
		{"Phone", &s.Phone},
		{"Email", &s.Email},
		{"Logo", &s.Logo},
		{"Theme", &s.Theme},
	}
	for _, f := range texts {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, *f.dst), a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	bools := []struct {
		label string
		dst   *bool
	}{
		{"Notifications", &s.Notifications},
		{"Auto backup", &s.AutoBackup},
	}
	for _, f := range bools {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s (true/false) [%t]", f.label, *f.dst), a.out)
		if err != nil {
			return err
		}
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid("%q is not true or false", v)
		}
		*f.dst = b
	}

	v, err := getSimpleText(a.reader, fmt.Sprintf("Backup interval in hours [%d]", s.BackupInterval), a.out)
	if err != nil {
		return err
	}
	if v != "" {
		n, err := parseQuantity(v)
		if err != nil {
			return err
		}
		s.BackupInterval = n
	}

	if _, err := a.settings.Update(ctx, s); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Settings saved.")
	return nil
}
