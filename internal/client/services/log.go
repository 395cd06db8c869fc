package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type LogService interface {
	List(ctx context.Context, f models.LogFilter) ([]models.LogEntry, error)
}

type logService struct {
	r Requester
}

func NewLogService(r Requester) LogService {
	return &logService{r: r}
}

func logQuery(f models.LogFilter) url.Values {
	q := url.Values{}
	if f.Level != models.LogAny {
		q.Set("nivel", string(f.Level))
	}
	if f.Start != nil {
		q.Set("dataInicio", f.Start.UTC().Format(time.RFC3339Nano))
	}
	if f.End != nil {
		q.Set("dataFim", f.End.UTC().Format(time.RFC3339Nano))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Set("busca", s)
	}
	return q
}

func (s *logService) List(ctx context.Context, f models.LogFilter) ([]models.LogEntry, error) {
	path := "/logs"
	if q := logQuery(f); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []models.LogEntry
	err := s.r.Get(ctx, path, &out)
	return out, err
}
