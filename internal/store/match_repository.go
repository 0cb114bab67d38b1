package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchrank/ladder/internal/contracts"
)

// MatchRepository implements contracts.MatchSource over the matches table
// the acquisition service populates. Dates and scores are read as text;
// parsing and row-drop accounting belong to the ranking loader.
type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

// Matches returns the full raw match table for one division, one row per
// team perspective.
func (r *MatchRepository) Matches(ctx context.Context, div contracts.Division) ([]contracts.RawMatch, error) {
	query := `
		SELECT team_id, opponent_id, team_name, opponent_name, club,
		       state, gender, age_group, date, goals_for, goals_against
		FROM matches
		WHERE state = $1 AND gender = $2 AND age_group = $3
		ORDER BY date, team_id, opponent_id
	`

	rows, err := r.pool.Query(ctx, query, div.State, div.Gender, div.AgeGroup)
	if err != nil {
		return nil, fmt.Errorf("query matches for %s: %w", div.Key(), err)
	}
	defer rows.Close()

	var out []contracts.RawMatch
	for rows.Next() {
		var m contracts.RawMatch
		if err := rows.Scan(
			&m.TeamID, &m.OpponentID, &m.TeamName, &m.OpponentName, &m.Club,
			&m.State, &m.Gender, &m.AgeGroup, &m.Date, &m.GoalsFor, &m.GoalsAgainst,
		); err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// AliasMap implements contracts.IdentityResolver: raw team id to canonical
// team id, as resolved upstream.
func (r *MatchRepository) AliasMap(ctx context.Context, div contracts.Division) (map[string]string, error) {
	query := `
		SELECT raw_team_id, canonical_team_id
		FROM team_aliases
		WHERE state = $1 AND gender = $2 AND age_group = $3
	`

	rows, err := r.pool.Query(ctx, query, div.State, div.Gender, div.AgeGroup)
	if err != nil {
		return nil, fmt.Errorf("query aliases for %s: %w", div.Key(), err)
	}
	defer rows.Close()

	aliases := make(map[string]string)
	for rows.Next() {
		var raw, canonical string
		if err := rows.Scan(&raw, &canonical); err != nil {
			return nil, fmt.Errorf("scan alias row: %w", err)
		}
		aliases[raw] = canonical
	}
	return aliases, rows.Err()
}

// LatestBuild implements contracts.BuildRegistry.
func (r *MatchRepository) LatestBuild(ctx context.Context, div contracts.Division) (string, error) {
	query := `
		SELECT build_id
		FROM data_builds
		WHERE state = $1 AND gender = $2 AND age_group = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var buildID string
	err := r.pool.QueryRow(ctx, query, div.State, div.Gender, div.AgeGroup).Scan(&buildID)
	if err != nil {
		return "", fmt.Errorf("query latest build for %s: %w", div.Key(), err)
	}
	return buildID, nil
}
