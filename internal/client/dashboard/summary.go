// Package dashboard derives the home-view metrics from the product and sale
// collections. Nothing is cached; every load recomputes from scratch.
package dashboard

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/timex"
	"github.com/shopspring/decimal"
)

const (
	// LowStockThreshold is the inclusive quantity at which a product counts as low.
	LowStockThreshold = 5
	// ListLimit caps the low-stock and recent-sales lists.
	ListLimit = 5
)

type Summary struct {
	TotalRevenue     decimal.Decimal
	TotalProducts    int
	TodaysSalesCount int
	LowStockCount    int
	// LowStockProducts holds the first ListLimit low-stock products in list order.
	LowStockProducts []models.Product
	// RecentSales holds the ListLimit newest sales, newest first.
	RecentSales []models.Sale
}

// Summarize is a pure function of its inputs. "Today" starts at midnight of
// now in now's location.
func Summarize(products []models.Product, sales []models.Sale, now time.Time) Summary {
	s := Summary{
		TotalRevenue:     decimal.Zero,
		TotalProducts:    len(products),
		LowStockProducts: []models.Product{},
		RecentSales:      []models.Sale{},
	}

	midnight := timex.StartOfDay(now)
	for _, sale := range sales {
		s.TotalRevenue = s.TotalRevenue.Add(sale.Total())
		if !sale.Date.Before(midnight) {
			s.TodaysSalesCount++
		}
	}

	for _, p := range products {
		if p.Quantity > LowStockThreshold {
			continue
		}
		s.LowStockCount++
		if len(s.LowStockProducts) < ListLimit {
			s.LowStockProducts = append(s.LowStockProducts, p)
		}
	}

	recent := make([]models.Sale, len(sales))
	copy(recent, sales)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > ListLimit {
		recent = recent[:ListLimit]
	}
	s.RecentSales = append(s.RecentSales, recent...)

	return s
}
