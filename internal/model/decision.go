package model

// Decision is the operator's input for one day.
type Decision struct {
	TransferVolume int     // units to move from warehouse to store
	BuyOffer       bool    // take a new wholesale offer today
	SellingPrice   float64 // retail price per unit
}

// Clamped returns the decision with negative volume and price replaced by 0.
func (d Decision) Clamped() Decision {
	if d.TransferVolume < 0 {
		d.TransferVolume = 0
	}
	if d.SellingPrice < 0 {
		d.SellingPrice = 0
	}
	return d
}
