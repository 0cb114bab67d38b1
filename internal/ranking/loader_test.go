package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/pkg/logger"
)

var testDivision = contracts.Division{State: "CA", Gender: "M", AgeGroup: "U14"}

func rawRow(team, opp, date, gf, ga string) contracts.RawMatch {
	return contracts.RawMatch{
		TeamID:       team,
		OpponentID:   opp,
		TeamName:     "Team " + team,
		OpponentName: "Team " + opp,
		Club:         "Club " + team,
		State:        testDivision.State,
		Gender:       testDivision.Gender,
		AgeGroup:     testDivision.AgeGroup,
		Date:         date,
		GoalsFor:     gf,
		GoalsAgainst: ga,
	}
}

func TestLoadMatches_WindowAndDivisionFilter(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := rankconfig.Default().Window

	rows := []contracts.RawMatch{
		rawRow("t1", "t2", "2024-05-20", "3", "1"),
		rawRow("t2", "t1", "2024-05-20", "1", "3"),
		rawRow("t1", "t2", "2020-01-01", "5", "0"), // outside window
		rawRow("t1", "t2", "2024-07-01", "2", "2"), // after as-of
	}
	other := rawRow("t9", "t8", "2024-05-20", "1", "1")
	other.State = "TX"
	rows = append(rows, other)

	matches, stats, err := LoadMatches(rows, testDivision, asOf, cfg, nil, logger.NewNop())
	require.NoError(t, err)

	assert.Len(t, matches, 2)
	assert.Equal(t, 5, stats.TotalRows)
	assert.Equal(t, 2, stats.KeptRows)
	assert.Equal(t, 0, stats.DroppedRows)
}

func TestLoadMatches_BadRowsDroppedWithCount(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := rankconfig.Default().Window

	rows := []contracts.RawMatch{
		rawRow("t1", "t2", "2024-05-20", "3", "1"),
		rawRow("t1", "t2", "not-a-date", "2", "1"),
		rawRow("t1", "t2", "2024-05-21", "abc", "1"),
		rawRow("t1", "t2", "2024-05-22", "2", ""),
	}

	matches, stats, err := LoadMatches(rows, testDivision, asOf, cfg, nil, logger.NewNop())
	require.NoError(t, err)

	assert.Len(t, matches, 1)
	assert.Equal(t, 3, stats.DroppedRows)
}

func TestLoadMatches_MissingColumnFailsFast(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := rankconfig.Default().Window

	rows := []contracts.RawMatch{
		rawRow("t1", "t2", "", "3", "1"),
		rawRow("t2", "t1", "", "1", "3"),
	}

	_, _, err := LoadMatches(rows, testDivision, asOf, cfg, nil, logger.NewNop())
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadMatches_BrokenLinkageFailsFast(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := rankconfig.Default().Window

	// half the rows lack an opponent id, well above the tolerated fraction
	rows := []contracts.RawMatch{
		rawRow("t1", "t2", "2024-05-20", "3", "1"),
		rawRow("t1", "", "2024-05-21", "2", "0"),
	}

	_, _, err := LoadMatches(rows, testDivision, asOf, cfg, nil, logger.NewNop())
	require.ErrorIs(t, err, ErrBrokenLinkage)
}

func TestLoadMatches_AliasMapRewritesIDs(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := rankconfig.Default().Window

	rows := []contracts.RawMatch{
		rawRow("t1-dupe", "t2", "2024-05-20", "3", "1"),
	}
	aliases := map[string]string{"t1-dupe": "t1"}

	matches, _, err := LoadMatches(rows, testDivision, asOf, cfg, aliases, logger.NewNop())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "t1", matches[0].TeamID)
}

func TestLoadMatches_EmptyInput(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := rankconfig.Default().Window

	matches, stats, err := LoadMatches(nil, testDivision, asOf, cfg, nil, logger.NewNop())
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Equal(t, 0, stats.TotalRows)
}
