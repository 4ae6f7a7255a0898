// Package engine implements the day-step pipeline of the retail simulation.
package engine

import (
	"sync"

	"go.uber.org/zap"

	"RetailSim/internal/model"
)

// Engine owns one run's state and advances it a day at a time.
type Engine struct {
	mu     sync.Mutex
	econ   model.Economy
	state  model.SimulationState
	logger *zap.Logger
}

// NewEngine creates an Engine at day 0 for the given economy.
func NewEngine(econ model.Economy, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		econ:   econ,
		state:  Initialize(econ),
		logger: logger,
	}
}

// Economy returns the run configuration.
func (e *Engine) Economy() model.Economy {
	return e.econ
}

// State returns a copy of the current state.
func (e *Engine) State() model.SimulationState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Advance runs one day with the operator's decision.
func (e *Engine) Advance(d model.Decision) model.DayResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	taxBefore := e.state.TotalTaxPaid
	creditBefore := e.state.CreditUsed

	res := Advance(&e.state, e.econ, d)

	e.logger.Debug("day advanced",
		zap.Int("day", res.Day),
		zap.Int("transfer", d.TransferVolume),
		zap.Bool("buy_offer", d.BuyOffer),
		zap.Float64("price", d.SellingPrice),
		zap.Int("sold", res.SalesQty),
		zap.Float64("bank", res.BankAccount),
	)
	if res.TotalTaxPaid > taxBefore {
		e.logger.Info("tax settled", zap.Int("day", res.Day), zap.Float64("tax", res.TotalTaxPaid-taxBefore))
	}
	if res.CreditUsed > creditBefore {
		e.logger.Info("credit drawn", zap.Int("day", res.Day), zap.Float64("amount", res.CreditUsed-creditBefore),
			zap.Float64("credit_used", res.CreditUsed))
	}
	if res.BankAccount < 0 {
		e.logger.Warn("credit line exhausted", zap.Int("day", res.Day), zap.Float64("bank", res.BankAccount))
	}
	return res
}

// SetStaff updates the sales team's skill and motivation, clamped to 0..1.
func (e *Engine) SetStaff(skill, motivation float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.SalesSkill = clamp01(skill)
	e.state.SalesMotivation = clamp01(motivation)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
