// Package pipeline runs the fetch, transform and write stages in order.
package pipeline

import (
	"context"
	"fmt"

	"github.com/navid-fn/dailybar/internal/models"
	"github.com/navid-fn/dailybar/internal/scraper"
	"github.com/navid-fn/dailybar/internal/transform"
	"github.com/sirupsen/logrus"
)

// Stage is a state of the export run.
type Stage int

const (
	StageFetching Stage = iota
	StageTransforming
	StageWriting
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageFetching:
		return "fetching"
	case StageTransforming:
		return "transforming"
	case StageWriting:
		return "writing"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageError records which stage a run failed in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Result is the outcome of a run. Err is nil exactly when the run reached StageDone.
type Result struct {
	Records []models.DailyRecord
	Path    string

	// Stage is StageDone or StageFailed. On failure Err is a *StageError
	// naming the stage that failed.
	Stage Stage
	Err   error
}

func (r Result) OK() bool { return r.Err == nil }

// SaveFunc persists records to path.
type SaveFunc func(path string, records []models.DailyRecord) error

// Config holds what a run needs besides its collaborators.
type Config struct {
	Symbol     string
	OutputPath string
	Params     transform.Params
}

type Pipeline struct {
	fetcher scraper.HistoryFetcher
	save    SaveFunc
	cfg     Config
	logger  *logrus.Entry
}

func New(fetcher scraper.HistoryFetcher, save SaveFunc, cfg Config, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		save:    save,
		cfg:     cfg,
		logger:  logger.WithField("component", "pipeline"),
	}
}

// Run executes Fetching -> Transforming -> Writing. The first failure ends
// the run; nothing is written unless the earlier stages succeeded.
func (p *Pipeline) Run(ctx context.Context) Result {
	stage := StageFetching
	fail := func(err error) Result {
		p.logger.WithField("stage", stage.String()).WithError(err).Error("Export failed")
		return Result{Path: p.cfg.OutputPath, Stage: StageFailed, Err: &StageError{Stage: stage, Err: err}}
	}

	p.logger.WithFields(logrus.Fields{
		"symbol": p.cfg.Symbol,
		"source": p.fetcher.Name(),
	}).Info("Fetching daily history")

	bars, err := p.fetcher.FetchDaily(ctx, p.cfg.Symbol)
	if err != nil {
		return fail(err)
	}

	stage = StageTransforming
	records, err := transform.Transform(bars, p.cfg.Params)
	if err != nil {
		return fail(err)
	}
	p.logger.WithField("records", len(records)).Debug("Transformed bars")

	stage = StageWriting
	if err := p.save(p.cfg.OutputPath, records); err != nil {
		return fail(err)
	}

	p.logger.WithFields(logrus.Fields{
		"records": len(records),
		"path":    p.cfg.OutputPath,
	}).Info("Export completed")

	return Result{Records: records, Path: p.cfg.OutputPath, Stage: StageDone}
}
