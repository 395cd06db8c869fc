package services

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/loader"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// LogView reloads logs on every filter change. A load superseded by a newer
// one returns loader.ErrStale and leaves the view untouched.
type LogView struct {
	latest *loader.Latest[models.LogFilter, []models.LogEntry]
}

func NewLogView(svc LogService) *LogView {
	return &LogView{latest: loader.NewLatest(svc.List)}
}

func (v *LogView) Load(ctx context.Context, f models.LogFilter) ([]models.LogEntry, error) {
	return v.latest.Load(ctx, f)
}

// Current returns the entries shown and the filter they match.
func (v *LogView) Current() ([]models.LogEntry, models.LogFilter, bool) {
	return v.latest.Value()
}

// ReportView is the report counterpart of LogView.
type ReportView struct {
	latest *loader.Latest[models.ReportFilter, models.Report]
}

func NewReportView(svc ReportService) *ReportView {
	return &ReportView{latest: loader.NewLatest(svc.Fetch)}
}

func (v *ReportView) Load(ctx context.Context, f models.ReportFilter) (models.Report, error) {
	return v.latest.Load(ctx, f)
}

func (v *ReportView) Current() (models.Report, models.ReportFilter, bool) {
	return v.latest.Value()
}
