package rankconfig

import "fmt"

// ValidationError reports a constraint violation that aborts the run
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints.
// The composite weights are a configuration contract and deliberately not
// required to sum to 1.
func Validate(cfg *Config) error {
	// === Window ===
	if cfg.Window.Days <= 0 {
		return ValidationError{"window.days", "must be > 0"}
	}
	if cfg.Window.MaxGamesForRank <= 0 {
		return ValidationError{"window.max_games_for_rank", "must be > 0"}
	}
	if cfg.Window.InactiveHideDays <= 0 {
		return ValidationError{"window.inactive_hide_days", "must be > 0"}
	}

	// === Weighting ===
	if cfg.Weighting.RecentCount < 0 {
		return ValidationError{"weighting.recent_count", "must be >= 0"}
	}
	if cfg.Weighting.RecentShare <= 0 || cfg.Weighting.RecentShare > 1 {
		return ValidationError{"weighting.recent_share", "must be in (0, 1]"}
	}
	if cfg.Weighting.TailStart < 0 || cfg.Weighting.TailEnd < cfg.Weighting.TailStart {
		return ValidationError{"weighting.tail", "tail_start must be >= 0 and <= tail_end"}
	}
	if cfg.Weighting.TailStartWeight < 0 || cfg.Weighting.TailEndWeight < 0 {
		return ValidationError{"weighting.tail", "tail weights must be >= 0"}
	}

	// === Metrics ===
	if cfg.Metrics.GoalDiffCap <= 0 {
		return ValidationError{"metrics.goal_diff_cap", "must be > 0"}
	}
	if cfg.Metrics.OutlierZScore <= 0 {
		return ValidationError{"metrics.outlier_zscore", "must be > 0"}
	}

	// === AdaptiveK ===
	if cfg.AdaptiveK.Alpha < 0 {
		return ValidationError{"adaptive_k.alpha", "must be >= 0"}
	}
	if cfg.AdaptiveK.Beta < 0 {
		return ValidationError{"adaptive_k.beta", "must be >= 0"}
	}

	// === Performance ===
	if cfg.Performance.K < 0 || cfg.Performance.K >= 1 {
		return ValidationError{"performance.k", "must be in [0, 1)"}
	}
	if cfg.Performance.DecayRate < 0 {
		return ValidationError{"performance.decay_rate", "must be >= 0"}
	}
	if cfg.Performance.Threshold < 0 {
		return ValidationError{"performance.threshold", "must be >= 0"}
	}

	// === Shrinkage ===
	if cfg.Shrinkage.Tau < 0 {
		return ValidationError{"shrinkage.tau", "must be >= 0"}
	}

	// === SOS ===
	if cfg.SOS.MaxIter < 1 {
		return ValidationError{"sos.max_iter", "must be >= 1"}
	}
	if cfg.SOS.Tol <= 0 {
		return ValidationError{"sos.tol", "must be > 0"}
	}
	if cfg.SOS.Damping <= 0 || cfg.SOS.Damping >= 1 {
		return ValidationError{"sos.damping", "must be in (0, 1)"}
	}
	if cfg.SOS.StretchExponent <= 0 {
		return ValidationError{"sos.stretch_exponent", "must be > 0"}
	}

	// === Composite ===
	if cfg.Composite.OffWeight < 0 || cfg.Composite.DefWeight < 0 || cfg.Composite.SOSWeight < 0 {
		return ValidationError{"composite", "weights must be >= 0"}
	}
	if cfg.Composite.ProvisionalAlpha < 0 {
		return ValidationError{"composite.provisional_alpha", "must be >= 0"}
	}

	// === Status ===
	if cfg.Status.MinGamesProvisional < 0 {
		return ValidationError{"status.min_games_provisional", "must be >= 0"}
	}

	return nil
}
