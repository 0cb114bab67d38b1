package rankconfig

// Config is the immutable set of tuning parameters for one ranking run.
// Loaded once, validated, hashed for provenance, then only read.
type Config struct {
	Window      Window      `yaml:"window" json:"window"`
	Weighting   Weighting   `yaml:"weighting" json:"weighting"`
	Metrics     Metrics     `yaml:"metrics" json:"metrics"`
	AdaptiveK   AdaptiveK   `yaml:"adaptive_k" json:"adaptive_k"`
	Performance Performance `yaml:"performance" json:"performance"`
	Shrinkage   Shrinkage   `yaml:"shrinkage" json:"shrinkage"`
	SOS         SOS         `yaml:"sos" json:"sos"`
	Composite   Composite   `yaml:"composite" json:"composite"`
	Status      StatusRules `yaml:"status" json:"status"`
}

// Window bounds which matches enter a run
type Window struct {
	Days             int `yaml:"days" json:"days"`
	MaxGamesForRank  int `yaml:"max_games_for_rank" json:"max_games_for_rank"`
	InactiveHideDays int `yaml:"inactive_hide_days" json:"inactive_hide_days"`
}

// Weighting configures tapered recency weights
type Weighting struct {
	RecentCount     int     `yaml:"recent_count" json:"recent_count"`
	RecentShare     float64 `yaml:"recent_share" json:"recent_share"`
	TailStart       int     `yaml:"tail_start" json:"tail_start"`
	TailEnd         int     `yaml:"tail_end" json:"tail_end"`
	TailStartWeight float64 `yaml:"tail_start_weight" json:"tail_start_weight"`
	TailEndWeight   float64 `yaml:"tail_end_weight" json:"tail_end_weight"`
}

// Metrics configures raw metric capping and outlier control
type Metrics struct {
	GoalDiffCap   float64 `yaml:"goal_diff_cap" json:"goal_diff_cap"`
	OutlierZScore float64 `yaml:"outlier_zscore" json:"outlier_zscore"`
}

// AdaptiveK configures the gap- and sample-sensitive multiplier
type AdaptiveK struct {
	Alpha float64 `yaml:"alpha" json:"alpha"`
	Beta  float64 `yaml:"beta" json:"beta"`
}

// Performance configures the actual-vs-expected multiplier
type Performance struct {
	K         float64 `yaml:"k" json:"k"`
	DecayRate float64 `yaml:"decay_rate" json:"decay_rate"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
}

// Shrinkage configures the Bayesian pull toward the league mean
type Shrinkage struct {
	Tau float64 `yaml:"tau" json:"tau"`
}

// SOS configures the strength-of-schedule engine
type SOS struct {
	MaxIter         int     `yaml:"max_iter" json:"max_iter"`
	Tol             float64 `yaml:"tol" json:"tol"`
	Damping         float64 `yaml:"damping" json:"damping"`
	StretchExponent float64 `yaml:"stretch_exponent" json:"stretch_exponent"`
	// UseBaseline forces the median fallback instead of iterative refinement
	UseBaseline bool `yaml:"use_baseline" json:"use_baseline"`
}

// Composite configures the weighted powerscore
type Composite struct {
	OffWeight        float64 `yaml:"off_weight" json:"off_weight"`
	DefWeight        float64 `yaml:"def_weight" json:"def_weight"`
	SOSWeight        float64 `yaml:"sos_weight" json:"sos_weight"`
	ProvisionalAlpha float64 `yaml:"provisional_alpha" json:"provisional_alpha"`
}

// StatusRules configures Active/Provisional classification
type StatusRules struct {
	MinGamesProvisional int `yaml:"min_games_provisional" json:"min_games_provisional"`
}

// Default returns the standard tuning used by scheduled runs
func Default() *Config {
	return &Config{
		Window: Window{
			Days:             365,
			MaxGamesForRank:  30,
			InactiveHideDays: 270,
		},
		Weighting: Weighting{
			RecentCount:     10,
			RecentShare:     0.70,
			TailStart:       20,
			TailEnd:         30,
			TailStartWeight: 0.85,
			TailEndWeight:   0.50,
		},
		Metrics: Metrics{
			GoalDiffCap:   7,
			OutlierZScore: 2.5,
		},
		AdaptiveK: AdaptiveK{
			Alpha: 0.5,
			Beta:  0.6,
		},
		Performance: Performance{
			K:         0.10,
			DecayRate: 0.05,
			Threshold: 1.0,
		},
		Shrinkage: Shrinkage{
			Tau: 6.0,
		},
		SOS: SOS{
			MaxIter:         3,
			Tol:             1e-4,
			Damping:         0.85,
			StretchExponent: 1.5,
			UseBaseline:     false,
		},
		Composite: Composite{
			OffWeight:        0.40,
			DefWeight:        0.30,
			SOSWeight:        0.30,
			ProvisionalAlpha: 0.75,
		},
		Status: StatusRules{
			MinGamesProvisional: 5,
		},
	}
}
