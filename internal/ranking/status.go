package ranking

import (
	"sort"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/rankconfig"
)

// AssignStatusAndRank classifies each team, orders the division by the
// tie-break chain, and assigns dense 1-based ranks. The tie-break order is
// a contract: powerscore_adj, then sao_norm, sad_norm, sos_norm, and
// finally matches_used, all descending, with team id as the terminal
// deterministic tiebreak.
func AssignStatusAndRank(teams []*TeamSeason, cfg rankconfig.StatusRules) {
	for _, ts := range teams {
		if ts.MatchesUsed >= cfg.MinGamesProvisional && ts.IsActive {
			ts.Status = contracts.StatusActive
		} else {
			ts.Status = contracts.StatusProvisional
		}
	}

	sort.Slice(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.PowerScoreAdj != b.PowerScoreAdj {
			return a.PowerScoreAdj > b.PowerScoreAdj
		}
		if a.SAONorm != b.SAONorm {
			return a.SAONorm > b.SAONorm
		}
		if a.SADNorm != b.SADNorm {
			return a.SADNorm > b.SADNorm
		}
		if a.SOSNorm != b.SOSNorm {
			return a.SOSNorm > b.SOSNorm
		}
		if a.MatchesUsed != b.MatchesUsed {
			return a.MatchesUsed > b.MatchesUsed
		}
		return a.TeamID < b.TeamID
	})

	for i, ts := range teams {
		ts.Rank = i + 1
	}
}
