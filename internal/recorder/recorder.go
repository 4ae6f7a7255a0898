package recorder

import (
	"time"

	"github.com/google/uuid"

	"RetailSim/internal/model"
)

// RunInfo describes a run when it starts.
type RunInfo struct {
	ID        string
	Mode      string // "demo" or "interactive"
	Days      int
	Economy   model.Economy
	StartedAt time.Time
}

// NewRunInfo creates a RunInfo with a fresh ID.
func NewRunInfo(mode string, days int, econ model.Economy) *RunInfo {
	return &RunInfo{
		ID:        uuid.NewString(),
		Mode:      mode,
		Days:      days,
		Economy:   econ,
		StartedAt: time.Now(),
	}
}

// Recorder keeps a write-only history of runs for later analysis. Runs are
// never resumed from it.
type Recorder interface {
	StartRun(run *RunInfo) error
	RecordDay(runID string, day *model.DayResult) error
	FinishRun(runID string, sum *model.RunSummary) error
	Close() error
}
