package recorder

import (
	"path/filepath"
	"testing"

	"RetailSim/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "history.db"), nil)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r := openTestRecorder(t)
	run := NewRunInfo("demo", 2, model.DefaultEconomy())

	if err := r.StartRun(run); err != nil {
		t.Fatalf("start run: %v", err)
	}
	days := []model.DayResult{
		{Day: 1, BankAccount: 11800, WarehouseStock: 450, InTransit: 5, StoreStock: 80, TaxBaseAccrued: 1800, SalesQty: 15, Revenue: 1800},
		{Day: 2, BankAccount: 9670, WarehouseStock: 450, StoreStock: 79, OfferVolume: 100, OfferPaidStage: 1, SalesQty: 17, Revenue: 1870},
	}
	for i := range days {
		if err := r.RecordDay(run.ID, &days[i]); err != nil {
			t.Fatalf("record day %d: %v", days[i].Day, err)
		}
	}
	if err := r.FinishRun(run.ID, &model.RunSummary{Days: 2, BankAccount: 9670, TotalRevenue: 3670, TotalExpenses: 4000}); err != nil {
		t.Fatalf("finish run: %v", err)
	}

	got, err := r.DayRows(run.ID)
	if err != nil {
		t.Fatalf("day rows: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	for i := range days {
		if got[i] != days[i] {
			t.Errorf("day %d: expected %+v, got %+v", i+1, days[i], got[i])
		}
	}

	rec, err := r.Run(run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if rec.Mode != "demo" || rec.Days != 2 {
		t.Errorf("unexpected run row %+v", rec)
	}
	if rec.FinalBalance == nil || *rec.FinalBalance != 9670 {
		t.Errorf("final balance not stored: %v", rec.FinalBalance)
	}
}

func TestSQLiteRecorder_DuplicateDayRejected(t *testing.T) {
	r := openTestRecorder(t)
	run := NewRunInfo("demo", 1, model.DefaultEconomy())
	if err := r.StartRun(run); err != nil {
		t.Fatalf("start run: %v", err)
	}

	d := model.DayResult{Day: 1}
	if err := r.RecordDay(run.ID, &d); err != nil {
		t.Fatalf("record day: %v", err)
	}
	if err := r.RecordDay(run.ID, &d); err == nil {
		t.Error("expected unique constraint error for a repeated day")
	}
}

func TestSQLiteRecorder_FinishUnknownRun(t *testing.T) {
	r := openTestRecorder(t)
	if err := r.FinishRun("missing", &model.RunSummary{}); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestNewRunInfo_UniqueIDs(t *testing.T) {
	a := NewRunInfo("demo", 10, model.DefaultEconomy())
	b := NewRunInfo("demo", 10, model.DefaultEconomy())
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct run IDs, got %q and %q", a.ID, b.ID)
	}
}
