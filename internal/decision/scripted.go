package decision

import (
	"context"

	"RetailSim/internal/model"
)

// Scripted replays a fixed list of decisions.
type Scripted struct {
	Inputs []model.Decision
	Cycle  bool // wrap around instead of running out
	next   int
}

// NewScripted creates a scripted source.
func NewScripted(inputs []model.Decision, cycle bool) *Scripted {
	return &Scripted{Inputs: inputs, Cycle: cycle}
}

// DemoScript returns the ten-day walkthrough: an opening transfer at a premium,
// a wholesale buy on day 2, then prices stepping down towards and below base.
func DemoScript() []model.Decision {
	return []model.Decision{
		{TransferVolume: 50, SellingPrice: 120},
		{BuyOffer: true, SellingPrice: 110},
		{TransferVolume: 30, SellingPrice: 115},
		{SellingPrice: 105},
		{TransferVolume: 80, SellingPrice: 100},
		{SellingPrice: 95},
		{TransferVolume: 20, SellingPrice: 100},
		{SellingPrice: 100},
		{SellingPrice: 100},
		{SellingPrice: 90},
	}
}

func (s *Scripted) Name() string { return "scripted" }

func (s *Scripted) Next(ctx context.Context) (model.Decision, error) {
	if err := ctx.Err(); err != nil {
		return model.Decision{}, err
	}
	if len(s.Inputs) == 0 || (!s.Cycle && s.next >= len(s.Inputs)) {
		return model.Decision{}, ErrExhausted
	}
	d := s.Inputs[s.next%len(s.Inputs)]
	s.next++
	return d, nil
}
