package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/shopspring/decimal"
)

// ReportPeriod is the aggregation bucket requested from /relatorios.
type ReportPeriod string

const (
	ReportDaily   ReportPeriod = "diario"
	ReportWeekly  ReportPeriod = "semanal"
	ReportMonthly ReportPeriod = "mensal"
)

// ParseReportPeriod accepts the wire value or its English name.
func ParseReportPeriod(s string) (ReportPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "diario", "daily":
		return ReportDaily, nil
	case "semanal", "weekly":
		return ReportWeekly, nil
	case "mensal", "monthly":
		return ReportMonthly, nil
	default:
		return "", fmt.Errorf("%w: unknown report period %q", common.ErrorInvalidInput, s)
	}
}

// ReportFilter selects a report. Nil bounds are left to the server.
type ReportFilter struct {
	Period ReportPeriod
	Start  *time.Time
	End    *time.Time
}

// Report is the server-computed summary.
type Report struct {
	SalesByPeriod []PeriodTotal   `json:"vendasPorPeriodo"`
	TopProducts   []ProductVolume `json:"produtosMaisVendidos"`
	TotalRevenue  decimal.Decimal `json:"totalVendas"`
	AverageTicket decimal.Decimal `json:"ticketMedio"`
	TotalProducts int             `json:"totalProdutos"`
	LowStock      int             `json:"produtosBaixa"`
}

type PeriodTotal struct {
	Period string          `json:"periodo"`
	Total  decimal.Decimal `json:"total"`
}

type ProductVolume struct {
	Name     string `json:"nome"`
	Quantity int    `json:"quantidade"`
}
