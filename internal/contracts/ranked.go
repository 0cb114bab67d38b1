package contracts

import "time"

// Status classifies how much a team's ranking can be trusted
type Status string

const (
	// StatusActive means the team has enough recent matches to be ranked fully
	StatusActive Status = "Active"
	// StatusProvisional means small sample size or inactivity
	StatusProvisional Status = "Provisional"
)

// RankedTeam is one row of the emitted ranking table for a division
type RankedTeam struct {
	Rank     int      `json:"rank"`
	TeamID   string   `json:"team_id"`
	Team     string   `json:"team"`
	Club     string   `json:"club"`
	Division Division `json:"division"`

	PowerScoreAdj float64 `json:"powerscore_adj"`
	PowerScore    float64 `json:"powerscore"`
	SAONorm       float64 `json:"sao_norm"`
	SADNorm       float64 `json:"sad_norm"`
	SOSNorm       float64 `json:"sos_norm"`
	GPMult        float64 `json:"gp_mult"`

	MatchesUsed   int       `json:"matches_used"`
	IsActive      bool      `json:"is_active"`
	Status        Status    `json:"status"`
	LastMatchDate time.Time `json:"last_match_date"`
}

// ConnectivityRow is the read-only opponent-graph view for one team.
// Auxiliary output; not part of the scoring contract.
type ConnectivityRow struct {
	TeamID        string `json:"team_id"`
	Team          string `json:"team"`
	ComponentID   int    `json:"component_id"`
	ComponentSize int    `json:"component_size"`
	Degree        int    `json:"degree"`
}
