package sos

import "sort"

// ComponentInfo describes one team's place in the opponent graph
type ComponentInfo struct {
	ComponentID   int
	ComponentSize int
	Degree        int
}

// Connectivity computes connected components and degrees over the opponent
// graph. Component ids are assigned by the lexicographically smallest team id
// in each component, so the view is stable across runs. Degree counts
// distinct opponents, not repeat matches.
func Connectivity(teams []string, edges []Edge) map[string]ComponentInfo {
	parent := make(map[string]string, len(teams))
	for _, t := range teams {
		parent[t] = t
	}

	var find func(string) string
	find = func(x string) string {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	neighbors := make(map[string]map[string]struct{}, len(teams))
	for _, e := range edges {
		_, teamKnown := parent[e.Team]
		_, oppKnown := parent[e.Opponent]
		if !teamKnown || !oppKnown || e.Team == e.Opponent {
			continue
		}
		union(e.Team, e.Opponent)

		if neighbors[e.Team] == nil {
			neighbors[e.Team] = make(map[string]struct{})
		}
		if neighbors[e.Opponent] == nil {
			neighbors[e.Opponent] = make(map[string]struct{})
		}
		neighbors[e.Team][e.Opponent] = struct{}{}
		neighbors[e.Opponent][e.Team] = struct{}{}
	}

	// Stable component numbering: sort roots by their smallest member
	members := make(map[string][]string)
	for _, t := range teams {
		root := find(t)
		members[root] = append(members[root], t)
	}

	roots := make([]string, 0, len(members))
	for root, ms := range members {
		sort.Strings(ms)
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return members[roots[i]][0] < members[roots[j]][0]
	})

	out := make(map[string]ComponentInfo, len(teams))
	for id, root := range roots {
		for _, t := range members[root] {
			out[t] = ComponentInfo{
				ComponentID:   id,
				ComponentSize: len(members[root]),
				Degree:        len(neighbors[t]),
			}
		}
	}
	return out
}
