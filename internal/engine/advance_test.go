package engine

import (
	"testing"

	"RetailSim/internal/model"
)

func TestAdvance_FirstDay(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)

	res := Advance(&s, econ, model.Decision{TransferVolume: 50, SellingPrice: 120})

	if res.Day != 1 {
		t.Fatalf("expected day 1, got %d", res.Day)
	}
	if res.WarehouseStock != 450 || res.InTransit != 5 {
		t.Errorf("expected warehouse 450 / in transit 5, got %d / %d", res.WarehouseStock, res.InTransit)
	}
	if res.SalesQty != 15 {
		t.Errorf("expected 15 units sold, got %d", res.SalesQty)
	}
	if !approx(res.Revenue, 1800) {
		t.Errorf("expected revenue 1800, got %.2f", res.Revenue)
	}
	if res.StoreStock != 80 {
		t.Errorf("expected store 50+45-15=80, got %d", res.StoreStock)
	}
	if !approx(res.BankAccount, 11800) {
		t.Errorf("expected bank 11800, got %.2f", res.BankAccount)
	}
	if !approx(res.TaxBaseAccrued, 1800) {
		t.Errorf("expected tax base 1800, got %.2f", res.TaxBaseAccrued)
	}
}

func TestAdvance_TransferCappedAtWarehouse(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)

	res := Advance(&s, econ, model.Decision{TransferVolume: 1000, SellingPrice: 100})

	if res.WarehouseStock != 0 {
		t.Errorf("expected empty warehouse, got %d", res.WarehouseStock)
	}
	if res.InTransit != 50 {
		t.Errorf("expected 50 left in transit, got %d", res.InTransit)
	}
	if got := res.StoreStock + res.SalesQty; got != 500 {
		t.Errorf("expected 50 initial + 450 delivered in store before sales, got %d", got)
	}
}

func TestAdvance_ClampsNegativeInputs(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)

	res := Advance(&s, econ, model.Decision{TransferVolume: -10, SellingPrice: -5})

	if res.WarehouseStock != 500 {
		t.Errorf("negative transfer should move nothing, warehouse=%d", res.WarehouseStock)
	}
	if res.Revenue != 0 {
		t.Errorf("negative price should be treated as 0, revenue=%.2f", res.Revenue)
	}
}

func TestAdvance_BuyOffer(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)

	res := Advance(&s, econ, model.Decision{BuyOffer: true, SellingPrice: 100})

	if res.OfferVolume != 100 || res.OfferPaidStage != 1 {
		t.Errorf("expected offer 100 with 1 stage paid, got %d / %d", res.OfferVolume, res.OfferPaidStage)
	}
	if !approx(s.TotalExpenses, 4000) {
		t.Errorf("expected first installment 100*80*0.5=4000, got %.2f", s.TotalExpenses)
	}
	// 18 units at 100: 10000 - 4000 + 1800
	if !approx(res.BankAccount, 7800) {
		t.Errorf("expected bank 7800, got %.2f", res.BankAccount)
	}
}

func TestAdvance_OfferSecondInstallment(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)

	Advance(&s, econ, model.Decision{BuyOffer: true})
	for s.Day < 29 {
		Advance(&s, econ, model.Decision{})
	}
	if s.Offer.NextStage != 1 {
		t.Fatalf("expected 1 stage paid before day 30, got %d", s.Offer.NextStage)
	}

	res := Advance(&s, econ, model.Decision{})

	if res.OfferPaidStage != 2 {
		t.Errorf("expected offer completed on day 30, got stage %d", res.OfferPaidStage)
	}
	if !approx(s.TotalExpenses, 8000) {
		t.Errorf("expected 8000 paid in total, got %.2f", s.TotalExpenses)
	}
	if !approx(res.BankAccount, 2000) {
		t.Errorf("expected bank 2000, got %.2f", res.BankAccount)
	}

	for s.Day < 60 {
		Advance(&s, econ, model.Decision{})
	}
	if !approx(s.TotalExpenses, 8000) {
		t.Errorf("completed offer must not charge again, expenses=%.2f", s.TotalExpenses)
	}
}

func TestAdvance_NewOfferReplacesOutstandingOne(t *testing.T) {
	econ := model.DefaultEconomy()
	econ.InitialBalance = 20000 // keep the credit line out of the expense total
	s := Initialize(econ)

	Advance(&s, econ, model.Decision{BuyOffer: true})
	res := Advance(&s, econ, model.Decision{BuyOffer: true})

	if res.OfferPaidStage != 1 {
		t.Errorf("expected fresh offer with 1 stage paid, got %d", res.OfferPaidStage)
	}
	for s.Day < 30 {
		Advance(&s, econ, model.Decision{})
	}
	// Two first installments plus one second installment; the first offer's
	// remaining stage is dropped.
	if !approx(s.TotalExpenses, 12000) {
		t.Errorf("expected 12000 paid, got %.2f", s.TotalExpenses)
	}
	if !s.Offer.Completed() {
		t.Error("expected replacement offer to be completed on day 30")
	}
}

func TestAdvance_TaxSettlement(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)
	s.Day = 29
	s.StoreStock = 0
	s.TaxBaseAccrued = 5000

	res := Advance(&s, econ, model.Decision{SellingPrice: 100})

	if !approx(res.TotalTaxPaid, 900) {
		t.Errorf("expected tax 900, got %.2f", res.TotalTaxPaid)
	}
	if res.TaxBaseAccrued != 0 {
		t.Errorf("expected tax base reset, got %.2f", res.TaxBaseAccrued)
	}
	if !approx(res.BankAccount, 9100) {
		t.Errorf("expected bank 9100, got %.2f", res.BankAccount)
	}
}

func TestAdvance_NoTaxOffPeriod(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)
	s.Day = 10
	s.StoreStock = 0
	s.TaxBaseAccrued = 5000

	res := Advance(&s, econ, model.Decision{})

	if res.TotalTaxPaid != 0 || !approx(res.TaxBaseAccrued, 5000) {
		t.Errorf("tax charged on day 11: paid=%.2f base=%.2f", res.TotalTaxPaid, res.TaxBaseAccrued)
	}
}

func TestDrawCredit_CappedAtLimit(t *testing.T) {
	s := model.SimulationState{BankAccount: -200, CreditUsed: 4900}

	drawCredit(&s, 5000)

	if !approx(s.BankAccount, -100) {
		t.Errorf("expected bank -100, got %.2f", s.BankAccount)
	}
	if !approx(s.CreditUsed, 5000) {
		t.Errorf("expected credit used 5000, got %.2f", s.CreditUsed)
	}
}

func TestAdvance_CreditShortfallStaysNegative(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)
	s.StoreStock = 0
	s.BankAccount = -200
	s.CreditUsed = 4900

	res := Advance(&s, econ, model.Decision{})

	if !approx(res.BankAccount, -100) || !approx(res.CreditUsed, 5000) {
		t.Errorf("expected bank -100 / credit 5000, got %.2f / %.2f", res.BankAccount, res.CreditUsed)
	}
}

func TestAdvance_InterestDoesNotCompound(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)
	s.Day = 29
	s.StoreStock = 0
	s.BankAccount = -1000

	res := Advance(&s, econ, model.Decision{})

	if !approx(res.CreditUsed, 1000) {
		t.Errorf("expected credit used 1000, got %.2f", res.CreditUsed)
	}
	if !approx(res.BankAccount, -20) {
		t.Errorf("expected 2%% interest taken from cash, bank=%.2f", res.BankAccount)
	}
	if !approx(s.TotalExpenses, 20) {
		t.Errorf("expected interest booked as expense, got %.2f", s.TotalExpenses)
	}
}

func TestAdvance_LongRunBounds(t *testing.T) {
	econ := model.DefaultEconomy()
	s := Initialize(econ)

	prevStage := 0
	for i := 0; i < 120; i++ {
		d := model.Decision{
			TransferVolume: (i * 37) % 90,
			BuyOffer:       i%4 == 0,
			SellingPrice:   float64(60 + (i*13)%120),
		}
		unitsBefore := s.TotalUnits()
		if d.BuyOffer {
			prevStage = 0
		}

		res := Advance(&s, econ, d)

		if got := s.TotalUnits() + res.SalesQty; got != unitsBefore {
			t.Fatalf("day %d: units not conserved, before=%d after+sold=%d", res.Day, unitsBefore, got)
		}
		if res.CreditUsed < 0 || res.CreditUsed > econ.CreditLimit {
			t.Fatalf("day %d: credit used %.2f outside 0..%.0f", res.Day, res.CreditUsed, econ.CreditLimit)
		}
		if res.OfferPaidStage < prevStage || res.OfferPaidStage > len(s.Offer.Stages) {
			t.Fatalf("day %d: offer stage %d (previous %d)", res.Day, res.OfferPaidStage, prevStage)
		}
		prevStage = res.OfferPaidStage
		if res.Day%30 == 0 && res.TaxBaseAccrued != 0 {
			t.Fatalf("day %d: tax base %.2f after settlement", res.Day, res.TaxBaseAccrued)
		}
		if res.SalesQty < 0 || res.StoreStock < 0 || res.InTransit < 0 || res.WarehouseStock < 0 {
			t.Fatalf("day %d: negative stock %+v", res.Day, res)
		}
	}
	if s.Day != 120 {
		t.Errorf("expected day 120, got %d", s.Day)
	}
}
