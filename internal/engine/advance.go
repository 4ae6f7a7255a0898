package engine

import (
	"math"

	"RetailSim/internal/model"
)

// Initialize builds the day-0 state for an economy.
func Initialize(econ model.Economy) model.SimulationState {
	return model.SimulationState{
		WarehouseStock:  econ.InitialWarehouse,
		StoreStock:      econ.InitialStore,
		BankAccount:     econ.InitialBalance,
		SalesSkill:      econ.Policy.SalesSkill,
		SalesMotivation: econ.Policy.SalesMotivation,
	}
}

// Advance runs one simulated day against state and returns its snapshot.
// Step order matters: each step reads what the previous ones wrote.
func Advance(state *model.SimulationState, econ model.Economy, d model.Decision) model.DayResult {
	d = d.Clamped()

	state.Day++
	settlementDay := isSettlementDay(state.Day, econ.Policy.PeriodDays)

	// Step a: warehouse -> truck -> store
	loadTruck(state, d.TransferVolume)
	deliver(state, econ.Policy.DeliveryRate)

	// Step b: wholesale purchase, first installment paid now
	if d.BuyOffer {
		buyOffer(state, econ)
	}

	// Step c: sales
	qty, revenue := sell(state, econ, d.SellingPrice)

	// Step d: scheduled installment
	if settlementDay && !state.Offer.Completed() {
		payInstallment(state)
	}

	// Step e: tax
	if revenue > 0 {
		state.TaxBaseAccrued += revenue
	}
	if settlementDay {
		settleTax(state, econ.TaxRate)
	}

	// Step f: credit line
	drawCredit(state, econ.CreditLimit)
	if settlementDay && state.CreditUsed > 0 {
		chargeInterest(state, econ.CreditRateMonthly)
	}

	return snapshot(state, qty, revenue)
}

func isSettlementDay(day, period int) bool {
	return period > 0 && day%period == 0
}

func loadTruck(s *model.SimulationState, volume int) {
	load := min(volume, s.WarehouseStock)
	s.WarehouseStock -= load
	s.InTransit += load
}

func deliver(s *model.SimulationState, rate float64) {
	delivered := int(math.Floor(float64(s.InTransit) * rate))
	delivered = max(0, min(delivered, s.InTransit))
	s.InTransit -= delivered
	s.StoreStock += delivered
}

// buyOffer replaces any outstanding offer; its unpaid stages are dropped.
func buyOffer(s *model.SimulationState, econ model.Economy) {
	s.Offer = model.NewStagedOffer(econ.Policy.OfferVolume, econ.OfferPrice, econ.Policy.OfferStages)
	payInstallment(s)
}

func payInstallment(s *model.SimulationState) {
	pay := s.Offer.NextPayment()
	s.BankAccount -= pay
	s.TotalExpenses += pay
	s.Offer.AdvanceStage()
}

func sell(s *model.SimulationState, econ model.Economy, price float64) (int, float64) {
	demand := Demand(econ.Policy.BaseDailyDemand, price, econ.BasePrice, s.SalesSkill, s.SalesMotivation)
	qty := int(math.Round(demand))
	qty = max(0, min(qty, s.StoreStock))

	revenue := float64(qty) * price
	s.StoreStock -= qty
	s.BankAccount += revenue
	s.TotalRevenue += revenue
	return qty, revenue
}

func settleTax(s *model.SimulationState, rate float64) {
	tax := s.TaxBaseAccrued * rate
	s.TaxBaseAccrued = 0
	s.BankAccount -= tax
	s.TotalTaxPaid += tax
	s.TotalExpenses += tax
}

// drawCredit covers a negative balance up to the remaining limit. A shortfall
// beyond the limit stays on the balance.
func drawCredit(s *model.SimulationState, limit float64) {
	if s.BankAccount >= 0 {
		return
	}
	available := math.Max(0, limit-s.CreditUsed)
	used := math.Min(-s.BankAccount, available)
	s.CreditUsed += used
	s.BankAccount += used
}

// chargeInterest debits the cash balance only; principal does not compound.
func chargeInterest(s *model.SimulationState, monthlyRate float64) {
	interest := s.CreditUsed * monthlyRate
	s.BankAccount -= interest
	s.TotalExpenses += interest
}

func snapshot(s *model.SimulationState, qty int, revenue float64) model.DayResult {
	return model.DayResult{
		Day:            s.Day,
		BankAccount:    s.BankAccount,
		CreditUsed:     s.CreditUsed,
		WarehouseStock: s.WarehouseStock,
		InTransit:      s.InTransit,
		StoreStock:     s.StoreStock,
		OfferVolume:    s.Offer.Volume,
		OfferPaidStage: s.Offer.NextStage,
		TaxBaseAccrued: s.TaxBaseAccrued,
		TotalTaxPaid:   s.TotalTaxPaid,
		SalesQty:       qty,
		Revenue:        revenue,
	}
}
