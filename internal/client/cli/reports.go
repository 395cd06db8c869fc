package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/loader"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

func (a *App) dashboardCmd(ctx context.Context, _ []string) error {
	s, err := a.dashboard.Load(ctx)
	if err != nil {
		return err
	}

	table(a.out, [][]any{
		{"Revenue", money(s.TotalRevenue)},
		{"Products", s.TotalProducts},
		{"Sales today", s.TodaysSalesCount},
		{"Low stock", s.LowStockCount},
	})

	if len(s.LowStockProducts) > 0 {
		fmt.Fprintln(a.out, "\nLow stock:")
		rows := [][]any{{"ID", "NAME", "QTY"}}
		for _, p := range s.LowStockProducts {
			rows = append(rows, []any{p.ID, p.Name, p.Quantity})
		}
		table(a.out, rows)
	}

	if len(s.RecentSales) > 0 {
		fmt.Fprintln(a.out, "\nRecent sales:")
		a.printSales(s.RecentSales)
	}
	return nil
}

// dateRange parses optional from/to options. "to" covers its whole day.
func dateRange(opts map[string]string) (start, end *time.Time, err error) {
	if v, ok := opts["from"]; ok {
		t, err := parseDate(v)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if v, ok := opts["to"]; ok {
		t, err := parseDate(v)
		if err != nil {
			return nil, nil, err
		}
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &t
	}
	return start, end, nil
}

// ignoreStale drops results that a newer load has superseded.
func ignoreStale(err error) error {
	if errors.Is(err, loader.ErrStale) {
		return nil
	}
	return err
}

func (a *App) reportCmd(ctx context.Context, args []string) error {
	opts, err := parseOptions(args, "period", "from", "to")
	if err != nil {
		return err
	}
	period, err := models.ParseReportPeriod(opts["period"])
	if err != nil {
		return err
	}
	start, end, err := dateRange(opts)
	if err != nil {
		return err
	}

	r, err := a.reports.Load(ctx, models.ReportFilter{Period: period, Start: start, End: end})
	if err != nil {
		return ignoreStale(err)
	}

	table(a.out, [][]any{
		{"Revenue", money(r.TotalRevenue)},
		{"Average ticket", money(r.AverageTicket)},
		{"Products", r.TotalProducts},
		{"Low stock", r.LowStock},
	})

	if len(r.SalesByPeriod) > 0 {
		fmt.Fprintf(a.out, "\nSales by period (%s):\n", period)
		rows := [][]any{{"PERIOD", "TOTAL"}}
		for _, p := range r.SalesByPeriod {
			rows = append(rows, []any{p.Period, money(p.Total)})
		}
		table(a.out, rows)
	}
	if len(r.TopProducts) > 0 {
		fmt.Fprintln(a.out, "\nBest sellers:")
		rows := [][]any{{"PRODUCT", "QTY"}}
		for _, p := range r.TopProducts {
			rows = append(rows, []any{p.Name, p.Quantity})
		}
		table(a.out, rows)
	}
	return nil
}

func (a *App) logsCmd(ctx context.Context, args []string) error {
	opts, err := parseOptions(args, "level", "from", "to")
	if err != nil {
		return err
	}
	level, err := models.ParseLogLevel(opts["level"])
	if err != nil {
		return err
	}
	start, end, err := dateRange(opts)
	if err != nil {
		return err
	}

	entries, err := a.logs.Load(ctx, models.LogFilter{Level: level, Start: start, End: end, Search: opts[""]})
	if err != nil {
		return ignoreStale(err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No log entries.")
		return nil
	}

	rows := [][]any{{"DATE", "LEVEL", "USER", "ACTION", "DETAILS"}}
	for _, e := range entries {
		rows = append(rows, []any{localTime(e.Timestamp), e.Level, e.User, e.Action, e.Details})
	}
	table(a.out, rows)
	return nil
}
