// Package scheduler drives a simulation run: it pulls each day's decision,
// advances the engine, prints the day and records it.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"RetailSim/internal/config"
	"RetailSim/internal/decision"
	"RetailSim/internal/engine"
	"RetailSim/internal/model"
	"RetailSim/internal/recorder"
	"RetailSim/internal/report"
)

// Options controls one run.
type Options struct {
	Days        int
	ShowHeader  bool // print the status line before asking for a decision
	FullSummary bool
}

// Scheduler is the only holder of the Engine between days.
type Scheduler struct {
	Engine   *engine.Engine
	Source   decision.Source
	Recorder recorder.Recorder
	Run      *recorder.RunInfo
	Out      io.Writer
	Ctx      context.Context

	opts   Options
	logger *zap.Logger
	played int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *engine.Engine, src decision.Source, rec recorder.Recorder,
	run *recorder.RunInfo, out io.Writer, opts Options, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Scheduler{
		Engine:   eng,
		Source:   src,
		Recorder: rec,
		Run:      run,
		Out:      out,
		Ctx:      ctx,
		opts:     opts,
		logger:   logger,
	}
}

// RunAll plays every day back to back and returns the end-of-run totals.
// An exhausted source ends the run early without error.
func (s *Scheduler) RunAll() (model.RunSummary, error) {
	s.begin()
	var runErr error
	for {
		finished, err := s.step()
		if err != nil {
			runErr = err
			break
		}
		if finished {
			break
		}
	}
	return s.finish(), runErr
}

// RunPaced plays one day per tick of the cron spec until the run ends or the
// context is cancelled. Ticks that fire while a day is still running are skipped.
func (s *Scheduler) RunPaced(pace string) (model.RunSummary, error) {
	c := cron.New(
		cron.WithParser(config.PaceParser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	done := make(chan error, 1)
	var once sync.Once
	if _, err := c.AddFunc(pace, func() {
		finished, err := s.step()
		if finished || err != nil {
			once.Do(func() { done <- err })
		}
	}); err != nil {
		return model.RunSummary{}, fmt.Errorf("register pace %q: %w", pace, err)
	}

	s.begin()
	c.Start()
	s.logger.Info("paced run started", zap.String("pace", pace), zap.Int("days", s.opts.Days))

	var runErr error
	select {
	case runErr = <-done:
	case <-s.Ctx.Done():
		runErr = s.Ctx.Err()
	}
	<-c.Stop().Done()

	return s.finish(), runErr
}

func (s *Scheduler) begin() {
	s.logger.Info("run started",
		zap.String("run_id", s.Run.ID),
		zap.String("mode", s.Run.Mode),
		zap.String("source", s.Source.Name()),
		zap.Int("days", s.opts.Days),
	)
	if err := s.Recorder.StartRun(s.Run); err != nil {
		s.logger.Error("record run start", zap.Error(err))
	}
}

// step plays a single day. finished reports that no further day will be played.
func (s *Scheduler) step() (finished bool, err error) {
	if s.played >= s.opts.Days {
		return true, nil
	}

	if s.opts.ShowHeader {
		if _, err := io.WriteString(s.Out, report.FormatHeader(s.Engine.State())); err != nil {
			return true, fmt.Errorf("write header: %w", err)
		}
	}

	d, err := s.Source.Next(s.Ctx)
	if err != nil {
		if errors.Is(err, decision.ErrExhausted) {
			s.logger.Info("decision source exhausted", zap.Int("days_played", s.played))
			return true, nil
		}
		return true, fmt.Errorf("next decision: %w", err)
	}

	res := s.Engine.Advance(d)
	s.played++

	if _, err := io.WriteString(s.Out, report.FormatDay(res)); err != nil {
		return true, fmt.Errorf("write day %d: %w", res.Day, err)
	}
	if err := s.Recorder.RecordDay(s.Run.ID, &res); err != nil {
		s.logger.Error("record day", zap.Int("day", res.Day), zap.Error(err))
	}

	return s.played >= s.opts.Days, nil
}

func (s *Scheduler) finish() model.RunSummary {
	sum := model.SummaryOf(s.Engine.State())

	if _, err := io.WriteString(s.Out, report.FormatSummary(sum, s.opts.FullSummary)); err != nil {
		s.logger.Error("write summary", zap.Error(err))
	}
	if err := s.Recorder.FinishRun(s.Run.ID, &sum); err != nil {
		s.logger.Error("record run finish", zap.Error(err))
	}

	s.logger.Info("run finished",
		zap.String("run_id", s.Run.ID),
		zap.Int("days_played", sum.Days),
		zap.Float64("bank", sum.BankAccount),
		zap.Float64("credit_used", sum.CreditUsed),
	)
	return sum
}
