package model

// SimulationState is the mutable state of a run. The engine owns it; callers get copies.
type SimulationState struct {
	Day            int     `json:"day"`
	WarehouseStock int     `json:"warehouse_stock"`
	InTransit      int     `json:"in_transit"`
	StoreStock     int     `json:"store_stock"`
	BankAccount    float64 `json:"bank_account"` // may be negative once credit is exhausted
	CreditUsed     float64 `json:"credit_used"`
	TaxBaseAccrued float64 `json:"tax_base_accrued"`

	// Running totals, reporting only.
	TotalTaxPaid  float64 `json:"total_tax_paid"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`

	SalesSkill      float64 `json:"sales_skill"`      // 0..1
	SalesMotivation float64 `json:"sales_motivation"` // 0..1

	Offer StagedOffer `json:"offer"`
}

// TotalUnits returns the stock held across warehouse, truck and store.
func (s *SimulationState) TotalUnits() int {
	return s.WarehouseStock + s.InTransit + s.StoreStock
}

// Clone returns a deep copy, so the offer schedule is not shared.
func (s *SimulationState) Clone() SimulationState {
	c := *s
	c.Offer.Stages = append([]float64(nil), s.Offer.Stages...)
	return c
}
