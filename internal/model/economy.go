package model

// Economy is the fixed configuration of one simulation run. It is built once at
// startup and never mutated.
type Economy struct {
	BasePrice         float64 `yaml:"base_price"`
	OfferPrice        float64 `yaml:"offer_price"`
	InitialBalance    float64 `yaml:"initial_balance"`
	InitialWarehouse  int     `yaml:"initial_warehouse"`
	InitialStore      int     `yaml:"initial_store"`
	CreditLimit       float64 `yaml:"credit_limit"`
	CreditRateMonthly float64 `yaml:"credit_rate_monthly"`
	TaxRate           float64 `yaml:"tax_rate"`
	Days              int     `yaml:"days"`

	Policy Policy `yaml:"policy"`
}

// Policy holds the rules that used to be compiled-in constants.
type Policy struct {
	OfferVolume     int       `yaml:"offer_volume"`
	OfferStages     []float64 `yaml:"offer_stages"` // fractions of volume*price owed per stage
	BaseDailyDemand float64   `yaml:"base_daily_demand"`
	DeliveryRate    float64   `yaml:"delivery_rate"` // share of in-transit units delivered per day
	PeriodDays      int       `yaml:"period_days"`   // tax, interest and offer installments
	SalesSkill      float64   `yaml:"sales_skill"`
	SalesMotivation float64   `yaml:"sales_motivation"`
}

// DefaultEconomy returns the reference shop: 100/unit retail, 80/unit wholesale,
// 10k cash, 5k credit line at 2% a month and 18% tax over a 90-day horizon.
func DefaultEconomy() Economy {
	return Economy{
		BasePrice:         100,
		OfferPrice:        80,
		InitialBalance:    10000,
		InitialWarehouse:  500,
		InitialStore:      50,
		CreditLimit:       5000,
		CreditRateMonthly: 0.02,
		TaxRate:           0.18,
		Days:              90,
		Policy:            DefaultPolicy(),
	}
}

// DefaultPolicy returns a 100-unit offer paid 50/50, 20 units of base demand a day,
// 90% daily delivery and 30-day settlement.
func DefaultPolicy() Policy {
	return Policy{
		OfferVolume:     100,
		OfferStages:     []float64{0.5, 0.5},
		BaseDailyDemand: 20,
		DeliveryRate:    0.9,
		PeriodDays:      30,
		SalesSkill:      0.8,
		SalesMotivation: 0.8,
	}
}
