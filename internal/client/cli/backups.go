package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

func (a *App) backupsCmd(ctx context.Context, _ []string) error {
	list, err := a.backups.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No backups.")
		return nil
	}

	rows := [][]any{{"ID", "DATE", "SIZE", "DESCRIPTION"}}
	for _, b := range list {
		rows = append(rows, []any{b.ID, localTime(b.Timestamp), b.SizeLabel, b.Description})
	}
	table(a.out, rows)
	return nil
}

func (a *App) backupCreateCmd(ctx context.Context, args []string) error {
	desc := strings.Join(args, " ")
	if desc == "" {
		var err error
		if desc, err = getSimpleText(a.reader, "Description", a.out); err != nil {
			return err
		}
	}

	b, err := a.backups.Create(ctx, desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Backup #%d created.\n", b.ID)
	return nil
}

func (a *App) backupDownloadCmd(ctx context.Context, args []string) error {
	raw, err := a.requireArg(args, "Backup id")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}

	data, err := a.backups.Download(ctx, id)
	if err != nil {
		return err
	}

	loc, err := a.sink.Save(ctx, models.BackupFileName(id), data)
	if err != nil {
		return fmt.Errorf("save backup: %w", err)
	}
	fmt.Fprintf(a.out, "Saved %s to %s.\n", humanize.Bytes(uint64(len(data))), loc)
	return nil
}

func (a *App) backupDeleteCmd(ctx context.Context, args []string) error {
	raw, err := a.requireArg(args, "Backup id")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("Delete backup #%d?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.backups.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Backup #%d deleted.\n", id)
	return nil
}
