package rankconfig

import (
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Default() must validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	yaml := []byte(`
window:
  days: 180
  max_games_for_rank: 25
  inactive_hide_days: 200
weighting:
  recent_count: 8
  recent_share: 0.6
  tail_start: 15
  tail_end: 25
  tail_start_weight: 0.9
  tail_end_weight: 0.4
metrics:
  goal_diff_cap: 6
  outlier_zscore: 2.0
adaptive_k:
  alpha: 0.4
  beta: 0.5
performance:
  k: 0.08
  decay_rate: 0.04
  threshold: 1.0
shrinkage:
  tau: 5
sos:
  max_iter: 5
  tol: 0.0001
  damping: 0.85
  stretch_exponent: 1.2
composite:
  off_weight: 0.4
  def_weight: 0.3
  sos_weight: 0.3
  provisional_alpha: 0.8
status:
  min_games_provisional: 4
`)

	cfg, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Window.Days != 180 {
		t.Errorf("expected window.days=180, got %d", cfg.Window.Days)
	}
	if cfg.SOS.MaxIter != 5 {
		t.Errorf("expected sos.max_iter=5, got %d", cfg.SOS.MaxIter)
	}
	if cfg.SOS.UseBaseline {
		t.Error("use_baseline should default to false")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	yaml := []byte(`
window:
  days: 180
  max_games_for_rank: 25
  inactive_hide_days: 200
  legacy_cutoff: 90
`)

	if _, err := Parse(yaml); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window.Days = 0 }},
		{"recent share above 1", func(c *Config) { c.Weighting.RecentShare = 1.5 }},
		{"inverted tail", func(c *Config) { c.Weighting.TailStart = 20; c.Weighting.TailEnd = 10 }},
		{"negative alpha", func(c *Config) { c.AdaptiveK.Alpha = -0.1 }},
		{"damping at 1", func(c *Config) { c.SOS.Damping = 1.0 }},
		{"zero tolerance", func(c *Config) { c.SOS.Tol = 0 }},
		{"negative weight", func(c *Config) { c.Composite.DefWeight = -0.3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	cfg := Default()

	hash, err := Hash(cfg)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if len(hash) != 64 {
		t.Errorf("expected 64 char hash, got %d", len(hash))
	}

	hash2, _ := Hash(cfg)
	if hash != hash2 {
		t.Error("hash not deterministic")
	}

	cfg.Shrinkage.Tau = 7.0
	hash3, _ := Hash(cfg)
	if hash == hash3 {
		t.Error("hash must change when a parameter changes")
	}
}
