package model

// StagedOffer is one wholesale purchase paid in installments.
type StagedOffer struct {
	Volume    int       `json:"volume"`
	UnitPrice float64   `json:"unit_price"`
	Stages    []float64 `json:"stages"`
	NextStage int       `json:"next_stage"` // index of the next unpaid stage
}

// NewStagedOffer creates an offer with nothing paid yet.
func NewStagedOffer(volume int, unitPrice float64, stages []float64) StagedOffer {
	s := make([]float64, len(stages))
	copy(s, stages)
	return StagedOffer{Volume: volume, UnitPrice: unitPrice, Stages: s}
}

// NextPayment returns the amount owed for the next stage, or 0 once completed.
func (o *StagedOffer) NextPayment() float64 {
	if o.Completed() {
		return 0
	}
	return float64(o.Volume) * o.UnitPrice * o.Stages[o.NextStage]
}

// AdvanceStage marks the next stage as paid.
func (o *StagedOffer) AdvanceStage() {
	if o.NextStage < len(o.Stages) {
		o.NextStage++
	}
}

// Completed reports whether every stage has been paid. The zero offer is completed.
func (o *StagedOffer) Completed() bool {
	return o.NextStage >= len(o.Stages)
}
