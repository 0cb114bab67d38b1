package ranking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/pkg/logger"
)

// Opponent linkage above this missing fraction aborts the division
const maxMissingOpponentFraction = 0.05

// Accepted input date layouts, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// LoadStats reports what the loader kept and dropped
type LoadStats struct {
	TotalRows   int
	DroppedRows int
	KeptRows    int
}

// LoadMatches restricts the raw match table to one division and the
// [asOf-window, asOf] time window. Rows with unparsable dates or scores are
// dropped with a counted warning; structurally missing columns and broken
// opponent linkage abort the run.
//
// aliasMap (from the identity-resolution collaborator) rewrites raw team ids
// to canonical ones before anything else looks at them; nil is fine.
func LoadMatches(raw []contracts.RawMatch, div contracts.Division, asOf time.Time, cfg rankconfig.Window, aliasMap map[string]string, log *logger.Logger) ([]contracts.Match, LoadStats, error) {
	stats := LoadStats{TotalRows: len(raw)}

	if len(raw) == 0 {
		return nil, stats, nil
	}

	if err := checkColumns(raw); err != nil {
		return nil, stats, err
	}
	if err := checkLinkage(raw); err != nil {
		return nil, stats, err
	}

	cutoff := asOf.AddDate(0, 0, -cfg.Days)

	matches := make([]contracts.Match, 0, len(raw))
	dropped := 0

	for _, r := range raw {
		if r.State != div.State || r.Gender != div.Gender || r.AgeGroup != div.AgeGroup {
			continue
		}

		date, ok := parseDate(r.Date)
		if !ok {
			dropped++
			continue
		}

		gf, err1 := strconv.ParseFloat(strings.TrimSpace(r.GoalsFor), 64)
		ga, err2 := strconv.ParseFloat(strings.TrimSpace(r.GoalsAgainst), 64)
		if err1 != nil || err2 != nil {
			dropped++
			continue
		}

		if date.Before(cutoff) || date.After(asOf) {
			continue
		}

		matches = append(matches, contracts.Match{
			TeamID:       resolveID(r.TeamID, aliasMap),
			OpponentID:   resolveID(r.OpponentID, aliasMap),
			TeamName:     r.TeamName,
			OpponentName: r.OpponentName,
			Club:         r.Club,
			Division:     div,
			Date:         date,
			GoalsFor:     gf,
			GoalsAgainst: ga,
		})
	}

	stats.DroppedRows = dropped
	stats.KeptRows = len(matches)

	if dropped > 0 {
		log.WithFields(map[string]interface{}{
			"division": div.Key(),
			"dropped":  dropped,
		}).Warn("Dropped rows with invalid dates or scores")
	}

	log.WithFields(map[string]interface{}{
		"division": div.Key(),
		"kept":     len(matches),
		"window":   cfg.Days,
	}).Info("Loaded and filtered match table")

	return matches, stats, nil
}

// checkColumns fails fast when a required column is absent, which shows up
// as the field being empty on every row.
func checkColumns(raw []contracts.RawMatch) error {
	required := map[string]func(contracts.RawMatch) string{
		"team_id":       func(r contracts.RawMatch) string { return r.TeamID },
		"opponent_id":   func(r contracts.RawMatch) string { return r.OpponentID },
		"date":          func(r contracts.RawMatch) string { return r.Date },
		"goals_for":     func(r contracts.RawMatch) string { return r.GoalsFor },
		"goals_against": func(r contracts.RawMatch) string { return r.GoalsAgainst },
	}

	for col, get := range required {
		empty := 0
		for _, r := range raw {
			if strings.TrimSpace(get(r)) == "" {
				empty++
			}
		}
		if empty == len(raw) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return nil
}

// checkLinkage aborts when identity resolution left too many rows without
// an opponent id.
func checkLinkage(raw []contracts.RawMatch) error {
	missing := 0
	for _, r := range raw {
		if strings.TrimSpace(r.OpponentID) == "" {
			missing++
		}
	}

	frac := float64(missing) / float64(len(raw))
	if frac > maxMissingOpponentFraction {
		return fmt.Errorf("%w: %.1f%% of rows lack an opponent id", ErrBrokenLinkage, frac*100)
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func resolveID(id string, aliasMap map[string]string) string {
	id = strings.TrimSpace(id)
	if canonical, ok := aliasMap[id]; ok {
		return canonical
	}
	return id
}
