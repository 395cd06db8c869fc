package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type ProductLister interface {
	List(ctx context.Context) ([]models.Product, error)
}

type SaleLister interface {
	List(ctx context.Context) ([]models.Sale, error)
}

// Loader fetches both collections concurrently and summarizes them once
// both have arrived. If either fetch fails, Load fails.
type Loader struct {
	products ProductLister
	sales    SaleLister
	now      func() time.Time
}

func NewLoader(products ProductLister, sales SaleLister, now func() time.Time) *Loader {
	if now == nil {
		now = time.Now
	}
	return &Loader{products: products, sales: sales, now: now}
}

func (l *Loader) Load(ctx context.Context) (Summary, error) {
	var (
		products []models.Product
		sales    []models.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = l.products.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = l.sales.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summarize(products, sales, l.now()), nil
}
