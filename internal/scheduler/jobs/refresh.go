package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/runner"
	"github.com/pitchrank/ladder/pkg/logger"
)

// RankingRefreshJob re-ranks every configured division on a schedule. The
// as-of timestamp is resolved once per execution and passed down explicitly.
type RankingRefreshJob struct {
	runner    *runner.Runner
	divisions []contracts.Division
	workers   int
	schedule  string
	logger    *logger.Logger
}

func NewRankingRefreshJob(run *runner.Runner, divisions []contracts.Division, workers int, schedule string, log *logger.Logger) *RankingRefreshJob {
	return &RankingRefreshJob{
		runner:    run,
		divisions: divisions,
		workers:   workers,
		schedule:  schedule,
		logger:    log,
	}
}

// Name returns the job name
func (j *RankingRefreshJob) Name() string {
	return "ranking_refresh"
}

// Schedule returns the configured cron expression
func (j *RankingRefreshJob) Schedule() string {
	return j.schedule
}

// Run re-ranks all divisions and fails if any division failed
func (j *RankingRefreshJob) Run(ctx context.Context) error {
	asOf := time.Now().UTC()
	j.logger.WithFields(map[string]interface{}{
		"divisions": len(j.divisions),
		"as_of":     asOf.Format("2006-01-02"),
	}).Info("Starting scheduled ranking refresh")

	report := j.runner.RunAll(ctx, j.divisions, asOf, j.workers)
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d divisions failed", report.Failed, len(j.divisions))
	}
	return nil
}
