// Package sos builds the opponent graph for a division and refines team
// strengths over it, with a robust median baseline when refinement is not
// usable.
package sos

import "github.com/pitchrank/ladder/internal/contracts"

// Edge is one directed opponent-graph edge, derived 1:1 from an in-window
// match row. The match table carries one row per team perspective, so a
// well-formed table yields both directions naturally.
type Edge struct {
	Team     string
	Opponent string
	Weight   float64
}

// BuildEdges derives the opponent edge list from in-window matches.
// Rows with a missing team or opponent id are skipped.
func BuildEdges(matches []contracts.Match) []Edge {
	edges := make([]Edge, 0, len(matches))
	for _, m := range matches {
		if m.TeamID == "" || m.OpponentID == "" {
			continue
		}
		edges = append(edges, Edge{
			Team:     m.TeamID,
			Opponent: m.OpponentID,
			Weight:   1.0,
		})
	}
	return edges
}
