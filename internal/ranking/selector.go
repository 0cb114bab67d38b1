package ranking

import (
	"sort"
	"time"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/internal/stats"
)

// SelectTeams groups matches by team, keeps each team's most recent matches
// up to the configured cap, caps goal differentials, guards raw goals
// against per-match outliers and computes the activity flag.
//
// Teams are returned sorted by id so every later stage iterates in a stable
// order.
func SelectTeams(matches []contracts.Match, asOf time.Time, cfg *rankconfig.Config) []*TeamSeason {
	byTeam := make(map[string][]contracts.Match)
	for _, m := range matches {
		if m.TeamID == "" {
			continue
		}
		byTeam[m.TeamID] = append(byTeam[m.TeamID], m)
	}

	ids := make([]string, 0, len(byTeam))
	for id := range byTeam {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	teams := make([]*TeamSeason, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, buildSeason(id, byTeam[id], asOf, cfg))
	}
	return teams
}

func buildSeason(id string, ms []contracts.Match, asOf time.Time, cfg *rankconfig.Config) *TeamSeason {
	// Newest first; ties broken on opponent id and score so reruns on the
	// same input keep the same retained set
	sort.SliceStable(ms, func(i, j int) bool {
		if !ms[i].Date.Equal(ms[j].Date) {
			return ms[i].Date.After(ms[j].Date)
		}
		if ms[i].OpponentID != ms[j].OpponentID {
			return ms[i].OpponentID < ms[j].OpponentID
		}
		return ms[i].GoalsFor > ms[j].GoalsFor
	})

	if len(ms) > cfg.Window.MaxGamesForRank {
		ms = ms[:cfg.Window.MaxGamesForRank]
	}

	season := &TeamSeason{
		TeamID:      id,
		Team:        ms[0].TeamName,
		Club:        ms[0].Club,
		Division:    ms[0].Division,
		MatchesUsed: len(ms),
	}

	season.Matches = make([]teamMatch, len(ms))
	for i, m := range ms {
		season.Matches[i] = teamMatch{
			Match:    m,
			GF:       m.GoalsFor,
			GA:       m.GoalsAgainst,
			GoalDiff: stats.CapGoalDiff(m.GoalDiff(), cfg.Metrics.GoalDiffCap),
		}
	}

	clipMatchGoals(season.Matches, cfg.Metrics.OutlierZScore)

	season.LastMatchDate = ms[0].Date
	daysSince := int(asOf.Sub(season.LastMatchDate).Hours() / 24)
	season.IsActive = daysSince <= cfg.Window.InactiveHideDays

	return season
}

// clipMatchGoals bounds each retained match's raw goals to the team's
// mean ± z*stdev, so one blowout cannot dominate the weighted aggregates
func clipMatchGoals(ms []teamMatch, z float64) {
	if len(ms) < 2 {
		return
	}

	gf := make([]float64, len(ms))
	ga := make([]float64, len(ms))
	for i, m := range ms {
		gf[i] = m.GF
		ga[i] = m.GA
	}

	gf = stats.ClipZScore(gf, z)
	ga = stats.ClipZScore(ga, z)
	for i := range ms {
		ms[i].GF = gf[i]
		ms[i].GA = ga[i]
	}
}
