package ranking

import (
	"context"
	"sort"
	"time"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/internal/sos"
	"github.com/pitchrank/ladder/pkg/logger"
)

// RunSummary captures what a single division run did, for logging and the
// run report.
type RunSummary struct {
	Division         contracts.Division `json:"division"`
	AsOf             time.Time          `json:"as_of"`
	TotalRows        int                `json:"total_rows"`
	DroppedRows      int                `json:"dropped_rows"`
	KeptRows         int                `json:"kept_rows"`
	Teams            int                `json:"teams"`
	ActiveTeams      int                `json:"active_teams"`
	ProvisionalTeams int                `json:"provisional_teams"`
	SOSFallback      bool               `json:"sos_fallback"`
	SOSReason        string             `json:"sos_reason,omitempty"`
	Elapsed          time.Duration      `json:"elapsed"`
}

// RunResult is the fully materialized output of one division run.
type RunResult struct {
	Rows         []contracts.RankedTeam
	Connectivity []contracts.ConnectivityRow
	Summary      RunSummary
}

// Pipeline runs the staged ranking computation for one division at a time.
// A single run is strictly sequential; callers fan out across divisions.
type Pipeline struct {
	cfg    *rankconfig.Config
	engine *sos.Engine
	log    *logger.Logger
}

func NewPipeline(cfg *rankconfig.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		engine: sos.NewEngine(cfg.SOS, log),
		log:    log,
	}
}

// Run executes the full stage chain for one division as of the given
// timestamp. Cancellation is honored between stages only; stages are not
// separately resumable. An empty division yields an empty result table.
func (p *Pipeline) Run(ctx context.Context, div contracts.Division, asOf time.Time, raw []contracts.RawMatch, aliasMap map[string]string) (*RunResult, error) {
	started := time.Now()
	log := p.log.WithField("division", div.Key())

	matches, loadStats, err := LoadMatches(raw, div, asOf, p.cfg.Window, aliasMap, log)
	if err != nil {
		return nil, err
	}

	summary := RunSummary{
		Division:    div,
		AsOf:        asOf,
		TotalRows:   loadStats.TotalRows,
		DroppedRows: loadStats.DroppedRows,
		KeptRows:    loadStats.KeptRows,
	}

	if len(matches) == 0 {
		log.Info("no matches in window, emitting empty table")
		summary.Elapsed = time.Since(started)
		return &RunResult{
			Rows:         []contracts.RankedTeam{},
			Connectivity: []contracts.ConnectivityRow{},
			Summary:      summary,
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	teams := SelectTeams(matches, asOf, p.cfg)
	summary.Teams = len(teams)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	AssignWeights(teams, p.cfg.Weighting)
	AggregateRawMetrics(teams)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := buildStrengthIndex(teams)
	AdjustForOpponents(teams, idx)
	ApplyAdaptiveK(teams, idx, p.cfg)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ApplyPerformance(teams, idx, p.cfg.Performance)
	ApplyShrinkage(teams, p.cfg.Shrinkage.Tau)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	edges := sos.BuildEdges(matches)
	seed := make(map[string]float64, len(teams))
	for _, ts := range teams {
		seed[ts.TeamID] = ts.SAOShrunk
	}
	sosResult := p.engine.Compute(seed, edges)
	for _, ts := range teams {
		ts.SOSComponent = sosResult.Strengths[ts.TeamID]
	}
	summary.SOSFallback = sosResult.Fallback
	summary.SOSReason = sosResult.Reason
	if sosResult.Fallback {
		log.WithField("reason", sosResult.Reason).Warn("sos engine used baseline fallback")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	NormalizeMetrics(teams)
	ComputeComposite(teams, p.cfg.Composite)
	AssignStatusAndRank(teams, p.cfg.Status)

	rows := make([]contracts.RankedTeam, len(teams))
	for i, ts := range teams {
		rows[i] = ts.row()
		if ts.Status == contracts.StatusActive {
			summary.ActiveTeams++
		} else {
			summary.ProvisionalTeams++
		}
	}

	summary.Elapsed = time.Since(started)
	log.WithFields(map[string]interface{}{
		"teams":        len(teams),
		"kept_rows":    loadStats.KeptRows,
		"dropped_rows": loadStats.DroppedRows,
		"sos_fallback": sosResult.Fallback,
	}).Info("division ranking complete")

	return &RunResult{
		Rows:         rows,
		Connectivity: connectivityView(teams, edges),
		Summary:      summary,
	}, nil
}

// connectivityView builds the auxiliary opponent-graph report over the same
// edges the SOS engine consumed. Sorted by team id for stable output.
func connectivityView(teams []*TeamSeason, edges []sos.Edge) []contracts.ConnectivityRow {
	ids := make([]string, len(teams))
	names := make(map[string]string, len(teams))
	for i, ts := range teams {
		ids[i] = ts.TeamID
		names[ts.TeamID] = ts.Team
	}
	info := sos.Connectivity(ids, edges)

	rows := make([]contracts.ConnectivityRow, 0, len(ids))
	for _, id := range ids {
		ci := info[id]
		rows = append(rows, contracts.ConnectivityRow{
			TeamID:        id,
			Team:          names[id],
			ComponentID:   ci.ComponentID,
			ComponentSize: ci.ComponentSize,
			Degree:        ci.Degree,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TeamID < rows[j].TeamID })
	return rows
}
