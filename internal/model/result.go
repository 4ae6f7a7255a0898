package model

// DayResult is the snapshot produced by one simulated day.
type DayResult struct {
	Day            int     `json:"day" db:"day"`
	BankAccount    float64 `json:"bank_account" db:"bank_account"`
	CreditUsed     float64 `json:"credit_used" db:"credit_used"`
	WarehouseStock int     `json:"warehouse_stock" db:"warehouse_stock"`
	InTransit      int     `json:"in_transit" db:"in_transit"`
	StoreStock     int     `json:"store_stock" db:"store_stock"`
	OfferVolume    int     `json:"offer_volume" db:"offer_volume"`
	OfferPaidStage int     `json:"offer_paid_stage" db:"offer_paid_stage"`
	TaxBaseAccrued float64 `json:"tax_base_accrued" db:"tax_base_accrued"`
	TotalTaxPaid   float64 `json:"total_tax_paid" db:"total_tax_paid"`
	SalesQty       int     `json:"sales_qty" db:"sales_qty"`
	Revenue        float64 `json:"revenue" db:"revenue"`
}

// RunSummary holds the end-of-run totals.
type RunSummary struct {
	Days          int     `json:"days"`
	BankAccount   float64 `json:"bank_account"`
	CreditUsed    float64 `json:"credit_used"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalTaxPaid  float64 `json:"total_tax_paid"`
}

// SummaryOf builds the end-of-run totals from a state.
func SummaryOf(s SimulationState) RunSummary {
	return RunSummary{
		Days:          s.Day,
		BankAccount:   s.BankAccount,
		CreditUsed:    s.CreditUsed,
		TotalRevenue:  s.TotalRevenue,
		TotalExpenses: s.TotalExpenses,
		TotalTaxPaid:  s.TotalTaxPaid,
	}
}
