package ranking

import (
	"math"

	"github.com/pitchrank/ladder/internal/rankconfig"
)

// Game counts at or beyond the cap earn the full multiplier
const gpCap = 20.0

// ComputeComposite blends the normalized axes into the power score and
// applies the game-count penalty. The adjusted score never exceeds the
// unadjusted score.
func ComputeComposite(teams []*TeamSeason, cfg rankconfig.Composite) {
	for _, ts := range teams {
		ts.PowerScore = cfg.OffWeight*ts.SAONorm +
			cfg.DefWeight*ts.SADNorm +
			cfg.SOSWeight*ts.SOSNorm

		gp := math.Min(float64(ts.MatchesUsed), gpCap)
		ts.GPMult = math.Pow(gp/gpCap, cfg.ProvisionalAlpha)
		ts.PowerScoreAdj = ts.PowerScore * ts.GPMult
	}
}
