package engine

// PriceFactor scales demand by how far the selling price sits from the base price.
// It is floored at 0 but not capped, so pricing below base lifts demand above 1x.
func PriceFactor(sellingPrice, basePrice float64) float64 {
	f := 1.0 - (sellingPrice-basePrice)/basePrice
	if f < 0 {
		return 0
	}
	return f
}

// StaffFactor maps average skill and motivation onto 0.6..1.0.
func StaffFactor(skill, motivation float64) float64 {
	return 0.6 + 0.4*((skill+motivation)/2.0)
}

// Demand returns the expected units sold for the day. Pure.
func Demand(baseDemand, sellingPrice, basePrice, skill, motivation float64) float64 {
	d := baseDemand * PriceFactor(sellingPrice, basePrice) * StaffFactor(skill, motivation)
	if d < 0 {
		return 0
	}
	return d
}
