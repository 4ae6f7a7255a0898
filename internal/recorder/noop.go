package recorder

import "RetailSim/internal/model"

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) StartRun(_ *RunInfo) error                     { return nil }
func (n *NoopRecorder) RecordDay(_ string, _ *model.DayResult) error  { return nil }
func (n *NoopRecorder) FinishRun(_ string, _ *model.RunSummary) error { return nil }
func (n *NoopRecorder) Close() error                                  { return nil }
