package services

import (
	"context"
	"net/url"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type ReportService interface {
	Fetch(ctx context.Context, f models.ReportFilter) (models.Report, error)
}

type reportService struct {
	r Requester
}

func NewReportService(r Requester) ReportService {
	return &reportService{r: r}
}

// Fetch asks the server for a report. An empty period means daily.
func (s *reportService) Fetch(ctx context.Context, f models.ReportFilter) (models.Report, error) {
	q := url.Values{}
	period := f.Period
	if period == "" {
		period = models.ReportDaily
	}
	q.Set("filtro", string(period))
	if f.Start != nil {
		q.Set("dataInicio", f.Start.UTC().Format(time.RFC3339Nano))
	}
	if f.End != nil {
		q.Set("dataFim", f.End.UTC().Format(time.RFC3339Nano))
	}

	var out models.Report
	err := s.r.Get(ctx, "/relatorios?"+q.Encode(), &out)
	return out, err
}
