package ranking

import (
	"time"

	"github.com/pitchrank/ladder/internal/contracts"
)

// teamMatch is one retained match from a team's perspective. GF and GA start
// as copies of the immutable match record and only these copies are touched
// by the per-match outlier guard.
type teamMatch struct {
	Match    contracts.Match
	GF       float64
	GA       float64
	GoalDiff float64
}

// TeamSeason accumulates one team's metrics across the pipeline stages.
// Each stage writes only the fields it owns; nothing survives the run except
// the emitted ranking row.
type TeamSeason struct {
	TeamID   string
	Team     string
	Club     string
	Division contracts.Division

	// Selector
	Matches       []teamMatch // newest first, capped
	MatchesUsed   int
	LastMatchDate time.Time
	IsActive      bool

	// Recency weighter
	Weights []float64

	// Raw aggregates
	OffRaw float64
	DefRaw float64

	// Opponent-strength adjusted
	SAORaw float64
	SADRaw float64

	// Adaptive-K adjusted
	SAOAdj float64
	SADAdj float64

	// Performance layer
	SAOPerf float64
	SADPerf float64

	// Bayesian shrinkage
	SAOShrunk float64
	SADShrunk float64

	// SOS engine
	SOSComponent float64

	// Normalizer
	SAONorm float64
	SADNorm float64
	SOSNorm float64

	// Composite scorer
	PowerScore    float64
	PowerScoreAdj float64
	GPMult        float64

	// Status & rank
	Status contracts.Status
	Rank   int
}

// row converts the accumulated season into the emitted table row
func (ts *TeamSeason) row() contracts.RankedTeam {
	return contracts.RankedTeam{
		Rank:          ts.Rank,
		TeamID:        ts.TeamID,
		Team:          ts.Team,
		Club:          ts.Club,
		Division:      ts.Division,
		PowerScoreAdj: ts.PowerScoreAdj,
		PowerScore:    ts.PowerScore,
		SAONorm:       ts.SAONorm,
		SADNorm:       ts.SADNorm,
		SOSNorm:       ts.SOSNorm,
		GPMult:        ts.GPMult,
		MatchesUsed:   ts.MatchesUsed,
		IsActive:      ts.IsActive,
		Status:        ts.Status,
		LastMatchDate: ts.LastMatchDate,
	}
}
