package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/shopspring/decimal"
)

// Sale is a recorded sale. Its total is never stored; use Total.
type Sale struct {
	ID     int64      `json:"id"`
	Client string     `json:"cliente"`
	Date   time.Time  `json:"dataVenda"`
	Items  []SaleItem `json:"itens"`
}

// SaleItem is one line of a sale, with the product as the server resolved it.
type SaleItem struct {
	Product  Product `json:"produto"`
	Quantity int     `json:"quantidade"`
}

// LineTotal is the single price × quantity rule. Every monetary aggregate in
// the client goes through it.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Total returns the line amount of the item.
func (i SaleItem) Total() decimal.Decimal {
	return LineTotal(i.Product.Price, i.Quantity)
}

// Total sums the line amounts of every item.
func (s Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Total())
	}
	return total
}

// Input converts a loaded sale back into an editable payload.
func (s Sale) Input() SaleInput {
	items := make([]SaleItemInput, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemInput{ProductID: item.Product.ID, Quantity: item.Quantity})
	}
	return SaleInput{Client: s.Client, Items: items}
}

// SaleInput is the body of POST/PUT /vendas.
type SaleInput struct {
	Client string          `json:"cliente"`
	Items  []SaleItemInput `json:"itens"`
}

type SaleItemInput struct {
	ProductID int64 `json:"produtoId"`
	Quantity  int   `json:"quantidade"`
}

// Validate checks required fields only.
func (in SaleInput) Validate() error {
	if strings.TrimSpace(in.Client) == "" {
		return fmt.Errorf("%w: client is required", common.ErrorInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", common.ErrorInvalidInput)
	}
	for n, item := range in.Items {
		if item.ProductID == 0 {
			return fmt.Errorf("%w: item %d has no product", common.ErrorInvalidInput, n+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", common.ErrorInvalidInput, n+1)
		}
	}
	return nil
}
