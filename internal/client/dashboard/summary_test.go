package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func productsWithQty(qty map[int64]int, order ...int64) []models.Product {
	out := make([]models.Product, 0, len(order))
	for _, id := range order {
		out = append(out, models.Product{ID: id, Quantity: qty[id]})
	}
	return out
}

func ids[T any](items []T, id func(T) int64) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func productID(p models.Product) int64 { return p.ID }
func saleID(s models.Sale) int64       { return s.ID }

func TestSummarize_LowStockScenario(t *testing.T) {
	products := productsWithQty(map[int64]int{1: 3, 2: 10, 3: 0}, 1, 2, 3)

	s := Summarize(products, nil, time.Now())

	assert.Equal(t, 2, s.LowStockCount)
	assert.Equal(t, []int64{1, 3}, ids(s.LowStockProducts, productID))
	assert.Equal(t, 3, s.TotalProducts)
}

func TestSummarize_LowStockBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		lowCount  int
		highCount int
		wantShown int
	}{
		{"none", 0, 3, 0},
		{"exactly five", 5, 2, 5},
		{"more than five", 8, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var products []models.Product
			for i := 0; i < tt.lowCount; i++ {
				products = append(products, models.Product{ID: int64(i + 1), Quantity: LowStockThreshold})
			}
			for i := 0; i < tt.highCount; i++ {
				products = append(products, models.Product{ID: int64(100 + i), Quantity: LowStockThreshold + 1})
			}

			s := Summarize(products, nil, time.Now())

			assert.Equal(t, tt.lowCount, s.LowStockCount)
			require.Len(t, s.LowStockProducts, tt.wantShown)
			for i, p := range s.LowStockProducts {
				assert.Equal(t, int64(i+1), p.ID, "list order preserved")
			}
		})
	}
}

func sale(id int64, at time.Time, items ...models.SaleItem) models.Sale {
	return models.Sale{ID: id, Date: at, Items: items}
}

func item(price string, qty int) models.SaleItem {
	return models.SaleItem{Product: models.Product{Price: dec(price)}, Quantity: qty}
}

func TestSummarize_RevenueUsesLineTotals(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		sale(1, now, item("10.00", 2), item("0.50", 3)),
		sale(2, now.AddDate(0, 0, -3), item("7.25", 4)),
	}

	s := Summarize(nil, sales, now)

	assert.True(t, s.TotalRevenue.Equal(dec("50.50")), s.TotalRevenue.String())
}

func TestSummarize_TodaysSalesFromLocalMidnight(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, loc)
	midnight := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	sales := []models.Sale{
		sale(1, midnight),                        // on the boundary, counts
		sale(2, midnight.Add(-time.Second)),      // yesterday
		sale(3, now.Add(-time.Hour)),             // today
		sale(4, midnight.Add(2*time.Hour).UTC()), // today, expressed in UTC
	}

	s := Summarize(nil, sales, now)
	assert.Equal(t, 3, s.TodaysSalesCount)
}

func TestSummarize_RecentSalesNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var sales []models.Sale
	// server order deliberately oldest first
	for i := 1; i <= 7; i++ {
		sales = append(sales, sale(int64(i), base.AddDate(0, 0, i)))
	}

	s := Summarize(nil, sales, base.AddDate(0, 1, 0))

	assert.Equal(t, []int64{7, 6, 5, 4, 3}, ids(s.RecentSales, saleID))
	assert.Equal(t, int64(1), sales[0].ID, "input not reordered")
}

func TestSummarize_RecentSalesTiesKeepServerOrder(t *testing.T) {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sales := []models.Sale{sale(3, at), sale(1, at), sale(2, at)}

	s := Summarize(nil, sales, at)
	assert.Equal(t, []int64{3, 1, 2}, ids(s.RecentSales, saleID))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, time.Now())

	assert.True(t, s.TotalRevenue.IsZero())
	assert.Zero(t, s.TotalProducts)
	assert.Zero(t, s.TodaysSalesCount)
	assert.Zero(t, s.LowStockCount)
	assert.Empty(t, s.LowStockProducts)
	assert.Empty(t, s.RecentSales)
}
