package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// DateLayout is the calendar-date format of the /vendas/periodo path.
const DateLayout = "2006-01-02"

// SaleService manages sales at /vendas.
type SaleService interface {
	List(ctx context.Context) ([]models.Sale, error)
	Get(ctx context.Context, id int64) (models.Sale, error)
	Create(ctx context.Context, in models.SaleInput) (models.Sale, error)
	Update(ctx context.Context, id int64, in models.SaleInput) (models.Sale, error)
	Delete(ctx context.Context, id int64) error
	ByClient(ctx context.Context, clientID string) ([]models.Sale, error)
	// ByPeriod lists sales between the calendar dates of start and end.
	ByPeriod(ctx context.Context, start, end time.Time) ([]models.Sale, error)
}

type saleService struct {
	r Requester
}

func NewSaleService(r Requester) SaleService {
	return &saleService{r: r}
}

func salePath(id int64) string {
	return fmt.Sprintf("/vendas/%d", id)
}

func (s *saleService) List(ctx context.Context) ([]models.Sale, error) {
	var out []models.Sale
	err := s.r.Get(ctx, "/vendas", &out)
	return out, err
}

func (s *saleService) Get(ctx context.Context, id int64) (models.Sale, error) {
	var out models.Sale
	err := s.r.Get(ctx, salePath(id), &out)
	return out, err
}

func (s *saleService) Create(ctx context.Context, in models.SaleInput) (models.Sale, error) {
	var out models.Sale
	err := s.r.Post(ctx, "/vendas", in, &out)
	return out, err
}

func (s *saleService) Update(ctx context.Context, id int64, in models.SaleInput) (models.Sale, error) {
	var out models.Sale
	err := s.r.Put(ctx, salePath(id), in, &out)
	return out, err
}

func (s *saleService) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, salePath(id), nil)
}

func (s *saleService) ByClient(ctx context.Context, clientID string) ([]models.Sale, error) {
	var out []models.Sale
	err := s.r.Get(ctx, "/vendas/cliente/"+url.PathEscape(clientID), &out)
	return out, err
}

func (s *saleService) ByPeriod(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	var out []models.Sale
	path := fmt.Sprintf("/vendas/periodo/%s/%s", start.Format(DateLayout), end.Format(DateLayout))
	err := s.r.Get(ctx, path, &out)
	return out, err
}
