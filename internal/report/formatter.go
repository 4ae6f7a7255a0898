// Package report renders simulation days and run totals as console text.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"RetailSim/internal/model"
)

// Separator closes each day block.
var Separator = strings.Repeat("-", 60)

// Money formats an amount with thousands separators and two decimals.
func Money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// Units formats a unit count with thousands separators.
func Units(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDay formats one day's result.
func FormatDay(d model.DayResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Day %d: balance=%s, credit used=%s\n", d.Day, Money(d.BankAccount), Money(d.CreditUsed)))
	b.WriteString(fmt.Sprintf("  Stock: warehouse=%s, in transit=%s, store=%s\n",
		Units(d.WarehouseStock), Units(d.InTransit), Units(d.StoreStock)))
	b.WriteString(fmt.Sprintf("  Sold %s units, revenue today=%s\n", Units(d.SalesQty), Money(d.Revenue)))
	if d.OfferVolume > 0 {
		b.WriteString(fmt.Sprintf("  Active offer: volume=%s, stages paid=%d\n", Units(d.OfferVolume), d.OfferPaidStage))
	}
	b.WriteString(fmt.Sprintf("  Tax base accrued=%s, total tax paid=%s\n", Money(d.TaxBaseAccrued), Money(d.TotalTaxPaid)))
	b.WriteString(Separator + "\n")
	return b.String()
}

// FormatHeader formats the status line shown before the operator decides a day.
func FormatHeader(s model.SimulationState) string {
	return fmt.Sprintf("\n---\nDay %d. Current: balance=%s, warehouse=%s, store=%s\n",
		s.Day+1, Money(s.BankAccount), Units(s.WarehouseStock), Units(s.StoreStock))
}

// FormatSummary formats the end-of-run totals. The short form is used after
// interactive runs.
func FormatSummary(sum model.RunSummary, full bool) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Simulation finished after %d days.\n", sum.Days))
	b.WriteString(fmt.Sprintf("  Final balance=%s, credit used=%s\n", Money(sum.BankAccount), Money(sum.CreditUsed)))
	if !full {
		b.WriteString(fmt.Sprintf("  Taxes paid=%s\n", Money(sum.TotalTaxPaid)))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  Total revenue=%s, total expenses=%s, taxes paid=%s\n",
		Money(sum.TotalRevenue), Money(sum.TotalExpenses), Money(sum.TotalTaxPaid)))
	b.WriteString(fmt.Sprintf("  Net result=%s\n", NetResult(sum).StringFixed(2)))
	return b.String()
}

// NetResult returns revenue minus expenses, rounded to cents.
func NetResult(sum model.RunSummary) decimal.Decimal {
	rev := decimal.NewFromFloat(sum.TotalRevenue).Round(2)
	exp := decimal.NewFromFloat(sum.TotalExpenses).Round(2)
	return rev.Sub(exp)
}
