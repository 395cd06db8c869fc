package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// ProductService manages the catalog at /produtos.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, in models.ProductInput) (models.Product, error)
	Update(ctx context.Context, id int64, in models.ProductInput) (models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	r Requester
}

func NewProductService(r Requester) ProductService {
	return &productService{r: r}
}

func productPath(id int64) string {
	return fmt.Sprintf("/produtos/%d", id)
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := s.r.Get(ctx, "/produtos", &out)
	return out, err
}

func (s *productService) Get(ctx context.Context, id int64) (models.Product, error) {
	var out models.Product
	err := s.r.Get(ctx, productPath(id), &out)
	return out, err
}

func (s *productService) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	var out models.Product
	err := s.r.Post(ctx, "/produtos", in, &out)
	return out, err
}

func (s *productService) Update(ctx context.Context, id int64, in models.ProductInput) (models.Product, error) {
	var out models.Product
	err := s.r.Put(ctx, productPath(id), in, &out)
	return out, err
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, productPath(id), nil)
}
