package recorder

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"RetailSim/internal/model"
)

// SQLiteRecorder writes run history to a SQLite database.
type SQLiteRecorder struct {
	db     *sqlx.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// RunRecord is one row of the runs table.
type RunRecord struct {
	ID            string   `db:"id"`
	StartedAt     int64    `db:"started_at"`
	Mode          string   `db:"mode"`
	Days          int      `db:"days"`
	EconomyJSON   string   `db:"economy_json"`
	FinishedAt    *int64   `db:"finished_at"`
	DaysPlayed    *int     `db:"days_played"`
	FinalBalance  *float64 `db:"final_balance"`
	CreditUsed    *float64 `db:"credit_used"`
	TotalRevenue  *float64 `db:"total_revenue"`
	TotalExpenses *float64 `db:"total_expenses"`
	TotalTaxPaid  *float64 `db:"total_tax_paid"`
}

type dayRow struct {
	RunID string `db:"run_id"`
	model.DayResult
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger *zap.Logger) (*SQLiteRecorder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, logger: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id             TEXT PRIMARY KEY,
			started_at     INTEGER NOT NULL,
			mode           TEXT NOT NULL,
			days           INTEGER NOT NULL,
			economy_json   TEXT NOT NULL,
			finished_at    INTEGER,
			days_played    INTEGER,
			final_balance  REAL,
			credit_used    REAL,
			total_revenue  REAL,
			total_expenses REAL,
			total_tax_paid REAL
		)`,

		`CREATE TABLE IF NOT EXISTS day_results (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id           TEXT NOT NULL REFERENCES runs(id),
			day              INTEGER NOT NULL,
			bank_account     REAL,
			credit_used      REAL,
			warehouse_stock  INTEGER,
			in_transit       INTEGER,
			store_stock      INTEGER,
			offer_volume     INTEGER,
			offer_paid_stage INTEGER,
			tax_base_accrued REAL,
			total_tax_paid   REAL,
			sales_qty        INTEGER,
			revenue          REAL,
			UNIQUE (run_id, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_day_results_run ON day_results(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) StartRun(run *RunInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	econJSON, err := json.Marshal(run.Economy)
	if err != nil {
		return fmt.Errorf("marshal economy: %w", err)
	}
	_, err = r.db.Exec(`INSERT INTO runs (id, started_at, mode, days, economy_json) VALUES (?,?,?,?,?)`,
		run.ID, run.StartedAt.Unix(), run.Mode, run.Days, string(econJSON))
	return err
}

func (r *SQLiteRecorder) RecordDay(runID string, day *model.DayResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.NamedExec(`INSERT INTO day_results
		(run_id, day, bank_account, credit_used, warehouse_stock, in_transit, store_stock,
		 offer_volume, offer_paid_stage, tax_base_accrued, total_tax_paid, sales_qty, revenue)
		VALUES (:run_id, :day, :bank_account, :credit_used, :warehouse_stock, :in_transit, :store_stock,
		 :offer_volume, :offer_paid_stage, :tax_base_accrued, :total_tax_paid, :sales_qty, :revenue)`,
		dayRow{RunID: runID, DayResult: *day},
	)
	return err
}

func (r *SQLiteRecorder) FinishRun(runID string, sum *model.RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`UPDATE runs SET finished_at=?, days_played=?, final_balance=?, credit_used=?,
		total_revenue=?, total_expenses=?, total_tax_paid=? WHERE id=?`,
		time.Now().Unix(), sum.Days, sum.BankAccount, sum.CreditUsed,
		sum.TotalRevenue, sum.TotalExpenses, sum.TotalTaxPaid, runID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run %s: no such run", runID)
	}
	return nil
}

// Run returns the stored row for a run.
func (r *SQLiteRecorder) Run(runID string) (*RunRecord, error) {
	var rec RunRecord
	if err := r.db.Get(&rec, "SELECT * FROM runs WHERE id = ?", runID); err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return &rec, nil
}

// DayRows returns a run's recorded days in order.
func (r *SQLiteRecorder) DayRows(runID string) ([]model.DayResult, error) {
	var days []model.DayResult
	err := r.db.Select(&days, `SELECT day, bank_account, credit_used, warehouse_stock, in_transit,
		store_stock, offer_volume, offer_paid_stage, tax_base_accrued, total_tax_paid, sales_qty, revenue
		FROM day_results WHERE run_id = ? ORDER BY day`, runID)
	return days, err
}

func (r *SQLiteRecorder) Close() error {
	r.logger.Info("closing sqlite recorder")
	return r.db.Close()
}
