package sos

import (
	"math"

	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/pkg/logger"
)

// Engine computes the strength-of-schedule component for one division
type Engine struct {
	cfg    rankconfig.SOS
	logger *logger.Logger
}

// NewEngine creates an Engine with the run's SOS parameters
func NewEngine(cfg rankconfig.SOS, log *logger.Logger) *Engine {
	return &Engine{cfg: cfg, logger: log}
}

// Compute refines the seed strengths over the opponent graph and applies the
// stretch exponent. When refinement is unusable (explicit policy, or a
// numerically invalid round) the median baseline takes over and the Result
// says so; the caller decides what to do with the reason, not whether the
// fallback happened.
func (e *Engine) Compute(seed map[string]float64, edges []Edge) Result {
	if e.cfg.UseBaseline {
		return e.baselineResult(seed, edges, "baseline requested by policy")
	}

	if len(edges) > 0 && !anyEdgeResolvable(seed, edges) {
		// Matches exist but every opponent is outside the seeded set, so
		// iteration has nothing to propagate
		return e.baselineResult(seed, edges, "opponent graph has no resolvable edges")
	}

	refined := Refine(seed, edges, e.cfg.MaxIter, e.cfg.Tol, e.cfg.Damping)

	for id, s := range refined {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			e.logger.WithFields(map[string]interface{}{
				"team": id,
			}).Warn("Iterative SOS produced a non-finite strength")
			return e.baselineResult(seed, edges, "iterative refinement produced non-finite values")
		}
	}

	return Result{Strengths: e.stretch(refined)}
}

func anyEdgeResolvable(seed map[string]float64, edges []Edge) bool {
	for _, edge := range edges {
		if _, ok := seed[edge.Team]; !ok {
			continue
		}
		if _, ok := seed[edge.Opponent]; ok {
			return true
		}
	}
	return false
}

func (e *Engine) baselineResult(seed map[string]float64, edges []Edge, reason string) Result {
	e.logger.WithField("reason", reason).Info("Using baseline SOS")
	return Result{
		Strengths: e.stretch(Baseline(seed, edges)),
		Fallback:  true,
		Reason:    reason,
	}
}

// stretch widens separation among strong schedules before normalization.
// Strengths are non-negative aggregates, so the power is well defined.
func (e *Engine) stretch(strengths map[string]float64) map[string]float64 {
	if e.cfg.StretchExponent == 1.0 {
		return strengths
	}
	out := make(map[string]float64, len(strengths))
	for id, s := range strengths {
		if s < 0 {
			s = 0
		}
		out[id] = math.Pow(s, e.cfg.StretchExponent)
	}
	return out
}
