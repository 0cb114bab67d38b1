package contracts

import "time"

// RawMatch is one match row exactly as the acquisition collaborator hands it
// over: one row per team perspective, dates and scores still unparsed.
// The loader owns parsing and row-drop accounting.
type RawMatch struct {
	TeamID       string `json:"team_id"`
	OpponentID   string `json:"opponent_id"`
	TeamName     string `json:"team_name"`
	OpponentName string `json:"opponent_name"`
	Club         string `json:"club"`
	State        string `json:"state"`
	Gender       string `json:"gender"`
	AgeGroup     string `json:"age_group"`
	Date         string `json:"date"`
	GoalsFor     string `json:"goals_for"`
	GoalsAgainst string `json:"goals_against"`
}

// Match is a validated, immutable match record. One row per team perspective;
// a well-formed table contains the mirror row for the opponent as well.
// The ranking core never mutates it.
type Match struct {
	TeamID       string
	OpponentID   string
	TeamName     string
	OpponentName string
	Club         string
	Division     Division
	Date         time.Time
	GoalsFor     float64
	GoalsAgainst float64
}

// GoalDiff returns the uncapped goal differential from the team's perspective
func (m Match) GoalDiff() float64 {
	return m.GoalsFor - m.GoalsAgainst
}
