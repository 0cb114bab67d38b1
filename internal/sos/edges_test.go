package sos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchrank/ladder/internal/contracts"
)

func mirroredMatches(teamA, teamB string, gfA, gaA float64) []contracts.Match {
	date := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)
	return []contracts.Match{
		{TeamID: teamA, OpponentID: teamB, Date: date, GoalsFor: gfA, GoalsAgainst: gaA},
		{TeamID: teamB, OpponentID: teamA, Date: date, GoalsFor: gaA, GoalsAgainst: gfA},
	}
}

func TestBuildEdges_OneEdgePerRow(t *testing.T) {
	matches := mirroredMatches("a", "b", 3, 1)
	edges := BuildEdges(matches)

	require.Len(t, edges, 2)
	assert.Equal(t, Edge{Team: "a", Opponent: "b", Weight: 1.0}, edges[0])
	assert.Equal(t, Edge{Team: "b", Opponent: "a", Weight: 1.0}, edges[1])
}

func TestBuildEdges_SymmetryOnWellFormedInput(t *testing.T) {
	// The loader contract guarantees one row per team perspective, so every
	// edge must have its mirror.
	var matches []contracts.Match
	matches = append(matches, mirroredMatches("a", "b", 2, 0)...)
	matches = append(matches, mirroredMatches("b", "c", 1, 1)...)
	matches = append(matches, mirroredMatches("a", "c", 4, 2)...)

	edges := BuildEdges(matches)

	type pair struct{ t, o string }
	seen := make(map[pair]int)
	for _, e := range edges {
		seen[pair{e.Team, e.Opponent}]++
	}
	for p, n := range seen {
		assert.Equal(t, n, seen[pair{p.o, p.t}], "edge %v must be mirrored", p)
	}
}

func TestBuildEdges_SkipsRowsWithMissingIDs(t *testing.T) {
	matches := []contracts.Match{
		{TeamID: "a", OpponentID: ""},
		{TeamID: "", OpponentID: "b"},
		{TeamID: "a", OpponentID: "b"},
	}

	edges := BuildEdges(matches)
	require.Len(t, edges, 1)
	assert.Equal(t, "a", edges[0].Team)
}

func TestConnectivity(t *testing.T) {
	teams := []string{"a", "b", "c", "d", "e"}
	// Two components: {a,b,c} and {d,e}; a plays b twice
	edges := []Edge{
		{Team: "a", Opponent: "b"}, {Team: "b", Opponent: "a"},
		{Team: "a", Opponent: "b"}, {Team: "b", Opponent: "a"},
		{Team: "b", Opponent: "c"}, {Team: "c", Opponent: "b"},
		{Team: "d", Opponent: "e"}, {Team: "e", Opponent: "d"},
	}

	info := Connectivity(teams, edges)
	require.Len(t, info, 5)

	assert.Equal(t, info["a"].ComponentID, info["b"].ComponentID)
	assert.Equal(t, info["b"].ComponentID, info["c"].ComponentID)
	assert.NotEqual(t, info["a"].ComponentID, info["d"].ComponentID)

	assert.Equal(t, 3, info["a"].ComponentSize)
	assert.Equal(t, 2, info["d"].ComponentSize)

	// Degree counts distinct opponents, not repeat matches
	assert.Equal(t, 1, info["a"].Degree)
	assert.Equal(t, 2, info["b"].Degree)

	// Component numbering is assigned by smallest member id
	assert.Equal(t, 0, info["a"].ComponentID)
	assert.Equal(t, 1, info["d"].ComponentID)
}

func TestConnectivity_IsolatedTeams(t *testing.T) {
	info := Connectivity([]string{"x", "y"}, nil)

	assert.Equal(t, 1, info["x"].ComponentSize)
	assert.Equal(t, 0, info["x"].Degree)
	assert.NotEqual(t, info["x"].ComponentID, info["y"].ComponentID)
}

func TestConnectivity_DeterministicUnderInputOrder(t *testing.T) {
	edges := []Edge{
		{Team: "m", Opponent: "n"}, {Team: "n", Opponent: "m"},
		{Team: "p", Opponent: "q"}, {Team: "q", Opponent: "p"},
	}

	a := Connectivity([]string{"m", "n", "p", "q"}, edges)
	b := Connectivity([]string{"q", "p", "n", "m"}, edges)

	assert.Equal(t, a, b)
}
