package runner

import (
	"context"
	"sync"
	"time"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/ranking"
	"github.com/pitchrank/ladder/pkg/logger"
)

// Runner fans the ranking pipeline out across divisions. Divisions are fully
// independent, so one failing division never stops the others; its error is
// recorded in the report instead.
type Runner struct {
	source     contracts.MatchSource
	resolver   contracts.IdentityResolver
	registry   contracts.BuildRegistry
	sink       contracts.ResultSink
	pipeline   *ranking.Pipeline
	configHash string
	log        *logger.Logger
}

// DivisionReport is the per-division outcome of one fan-out run.
type DivisionReport struct {
	Division contracts.Division `json:"division"`
	BuildID  string             `json:"build_id,omitempty"`
	Summary  ranking.RunSummary `json:"summary"`
	Error    string             `json:"error,omitempty"`
}

// Report aggregates a full run.
type Report struct {
	AsOf      time.Time        `json:"as_of"`
	Started   time.Time        `json:"started"`
	Elapsed   time.Duration    `json:"elapsed"`
	Divisions []DivisionReport `json:"divisions"`
	Failed    int              `json:"failed"`
}

// New wires a runner. resolver and registry may be nil when identity
// resolution and snapshot tracking are handled out of band.
func New(source contracts.MatchSource, resolver contracts.IdentityResolver, registry contracts.BuildRegistry, sink contracts.ResultSink, pipeline *ranking.Pipeline, configHash string, log *logger.Logger) *Runner {
	return &Runner{
		source:     source,
		resolver:   resolver,
		registry:   registry,
		sink:       sink,
		pipeline:   pipeline,
		configHash: configHash,
		log:        log,
	}
}

// RunAll ranks every division with at most concurrency workers. The report
// lists divisions in input order regardless of completion order.
func (r *Runner) RunAll(ctx context.Context, divisions []contracts.Division, asOf time.Time, concurrency int) *Report {
	started := time.Now()
	if concurrency < 1 {
		concurrency = 1
	}

	reports := make([]DivisionReport, len(divisions))

	type job struct {
		idx int
		div contracts.Division
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				reports[j.idx] = r.runDivision(ctx, j.div, asOf)
			}
		}()
	}

	for i, div := range divisions {
		jobs <- job{idx: i, div: div}
	}
	close(jobs)
	wg.Wait()

	report := &Report{
		AsOf:      asOf,
		Started:   started,
		Elapsed:   time.Since(started),
		Divisions: reports,
	}
	for _, dr := range reports {
		if dr.Error != "" {
			report.Failed++
		}
	}

	r.log.WithFields(map[string]interface{}{
		"divisions": len(divisions),
		"failed":    report.Failed,
		"elapsed":   report.Elapsed.String(),
	}).Info("Ranking run complete")

	return report
}

func (r *Runner) runDivision(ctx context.Context, div contracts.Division, asOf time.Time) DivisionReport {
	dr := DivisionReport{Division: div}
	log := r.log.WithField("division", div.Key())

	if r.registry != nil {
		// Snapshot provenance; a missing registry row is not fatal
		buildID, err := r.registry.LatestBuild(ctx, div)
		if err != nil {
			log.WithError(err).Warn("No build registered for division")
		} else {
			dr.BuildID = buildID
		}
	}

	raw, err := r.source.Matches(ctx, div)
	if err != nil {
		log.WithError(err).Error("Failed to load match table")
		dr.Error = err.Error()
		return dr
	}

	var aliases map[string]string
	if r.resolver != nil {
		aliases, err = r.resolver.AliasMap(ctx, div)
		if err != nil {
			log.WithError(err).Error("Failed to load alias map")
			dr.Error = err.Error()
			return dr
		}
	}

	res, err := r.pipeline.Run(ctx, div, asOf, raw, aliases)
	if err != nil {
		log.WithError(err).Error("Division ranking failed")
		dr.Error = err.Error()
		return dr
	}
	dr.Summary = res.Summary

	if err := r.sink.WriteRankings(ctx, div, asOf, r.configHash, res.Rows); err != nil {
		log.WithError(err).Error("Failed to write rankings")
		dr.Error = err.Error()
		return dr
	}

	return dr
}
