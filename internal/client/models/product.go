package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/shopspring/decimal"
)

// Product is a catalog item.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Quantity    int             `json:"quantidade"`
}

// ProductInput is the body of POST/PUT /produtos.
type ProductInput struct {
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Quantity    int             `json:"quantidade"`
}

// MarshalJSON writes the price as a JSON number, which the backend expects.
func (in ProductInput) MarshalJSON() ([]byte, error) {
	type plain ProductInput
	return json.Marshal(struct {
		plain
		Price json.Number `json:"preco"`
	}{plain(in), json.Number(in.Price.String())})
}

// Input returns the editable part of p.
func (p Product) Input() ProductInput {
	return ProductInput{Name: p.Name, Description: p.Description, Price: p.Price, Quantity: p.Quantity}
}

// Validate checks required fields only; everything else is the server's call.
func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorInvalidInput)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", common.ErrorInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", common.ErrorInvalidInput)
	}
	return nil
}
