package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symmetricUnitEdges(pairs [][2]string) []Edge {
	edges := make([]Edge, 0, len(pairs)*2)
	for _, p := range pairs {
		edges = append(edges,
			Edge{Team: p[0], Opponent: p[1], Weight: 1.0},
			Edge{Team: p[1], Opponent: p[0], Weight: 1.0},
		)
	}
	return edges
}

func TestRefine_IdenticalSeedsStayConstant(t *testing.T) {
	seed := map[string]float64{"a": 0.6, "b": 0.6, "c": 0.6, "d": 0.6}
	edges := symmetricUnitEdges([][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}})

	refined := Refine(seed, edges, 10, 1e-4, 0.85)

	require.Len(t, refined, 4)
	for id, s := range refined {
		assert.InDelta(t, 0.6, s, 1e-9, "team %s", id)
	}
}

func TestRefine_RelabelingInvariance(t *testing.T) {
	seed1 := map[string]float64{"a": 0.9, "b": 0.5, "c": 0.1}
	edges1 := symmetricUnitEdges([][2]string{{"a", "b"}, {"b", "c"}})

	// Same graph with permuted labels: a->x, b->y, c->z
	seed2 := map[string]float64{"x": 0.9, "y": 0.5, "z": 0.1}
	edges2 := symmetricUnitEdges([][2]string{{"x", "y"}, {"y", "z"}})

	r1 := Refine(seed1, edges1, 3, 1e-4, 0.85)
	r2 := Refine(seed2, edges2, 3, 1e-4, 0.85)

	assert.InDelta(t, r1["a"], r2["x"], 1e-12)
	assert.InDelta(t, r1["b"], r2["y"], 1e-12)
	assert.InDelta(t, r1["c"], r2["z"], 1e-12)
}

func TestRefine_EmptyInputsReturnSeedsUnchanged(t *testing.T) {
	seed := map[string]float64{"a": 0.4, "b": 0.8}

	noEdges := Refine(seed, nil, 3, 1e-4, 0.85)
	assert.Equal(t, seed, noEdges)

	noSeeds := Refine(map[string]float64{}, symmetricUnitEdges([][2]string{{"a", "b"}}), 3, 1e-4, 0.85)
	assert.Empty(t, noSeeds)
}

func TestRefine_PullsTowardOpponentStrength(t *testing.T) {
	// A weak team with only strong opponents is pulled up; the reverse for
	// the strong team.
	seed := map[string]float64{"weak": 0.1, "strong": 0.9}
	edges := symmetricUnitEdges([][2]string{{"weak", "strong"}})

	refined := Refine(seed, edges, 3, 1e-9, 0.85)

	assert.Greater(t, refined["weak"], 0.1)
	assert.Less(t, refined["strong"], 0.9)
}

func TestRefine_TeamWithoutOpponentsUnchanged(t *testing.T) {
	seed := map[string]float64{"a": 0.3, "b": 0.7, "isolated": 0.55}
	edges := symmetricUnitEdges([][2]string{{"a", "b"}})

	refined := Refine(seed, edges, 3, 1e-4, 0.85)

	assert.Equal(t, 0.55, refined["isolated"])
}

func TestRefine_UnresolvableOpponentIgnored(t *testing.T) {
	// b's only opponent is outside the division, so no update applies
	seed := map[string]float64{"b": 0.7}
	edges := []Edge{{Team: "b", Opponent: "ghost", Weight: 1.0}}

	refined := Refine(seed, edges, 3, 1e-4, 0.85)
	assert.Equal(t, 0.7, refined["b"])
}

func TestRefine_DoesNotMutateSeed(t *testing.T) {
	seed := map[string]float64{"weak": 0.1, "strong": 0.9}
	edges := symmetricUnitEdges([][2]string{{"weak", "strong"}})

	_ = Refine(seed, edges, 3, 1e-4, 0.85)

	assert.Equal(t, 0.1, seed["weak"])
	assert.Equal(t, 0.9, seed["strong"])
}

func TestRefine_EarlyStopBelowTolerance(t *testing.T) {
	// With a huge tolerance the first round already satisfies the stop
	// condition; the result must equal exactly one round of updates.
	seed := map[string]float64{"weak": 0.1, "strong": 0.9}
	edges := symmetricUnitEdges([][2]string{{"weak", "strong"}})

	oneRound := Refine(seed, edges, 1, 1e-12, 0.85)
	earlyStop := Refine(seed, edges, 50, 10.0, 0.85)

	assert.InDelta(t, oneRound["weak"], earlyStop["weak"], 1e-12)
	assert.InDelta(t, oneRound["strong"], earlyStop["strong"], 1e-12)
}
