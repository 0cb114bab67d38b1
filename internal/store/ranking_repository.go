package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitchrank/ladder/internal/contracts"
)

// RankingRepository implements contracts.ResultSink and serves the API's
// reads. A division's table is replaced in one transaction so readers never
// observe a half-written ranking.
type RankingRepository struct {
	pool *pgxpool.Pool
}

func NewRankingRepository(pool *pgxpool.Pool) *RankingRepository {
	return &RankingRepository{pool: pool}
}

// WriteRankings replaces the division's ranking table with the given rows.
func (r *RankingRepository) WriteRankings(ctx context.Context, div contracts.Division, asOf time.Time, configHash string, rows []contracts.RankedTeam) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin rankings tx for %s: %w", div.Key(), err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM rankings
		WHERE state = $1 AND gender = $2 AND age_group = $3
	`, div.State, div.Gender, div.AgeGroup)
	if err != nil {
		return fmt.Errorf("clear rankings for %s: %w", div.Key(), err)
	}

	query := `
		INSERT INTO rankings (
			state, gender, age_group, rank, team_id, team, club,
			powerscore_adj, powerscore, sao_norm, sad_norm, sos_norm,
			gp_mult, matches_used, is_active, status, last_match_date,
			as_of, config_hash
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19
		)
	`
	for _, row := range rows {
		_, err := tx.Exec(ctx, query,
			div.State, div.Gender, div.AgeGroup, row.Rank, row.TeamID, row.Team, row.Club,
			row.PowerScoreAdj, row.PowerScore, row.SAONorm, row.SADNorm, row.SOSNorm,
			row.GPMult, row.MatchesUsed, row.IsActive, string(row.Status), row.LastMatchDate,
			asOf, configHash,
		)
		if err != nil {
			return fmt.Errorf("insert ranking row for %s: %w", div.Key(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit rankings for %s: %w", div.Key(), err)
	}
	return nil
}

// Rankings returns the current table for a division in rank order.
func (r *RankingRepository) Rankings(ctx context.Context, div contracts.Division) ([]contracts.RankedTeam, error) {
	query := `
		SELECT rank, team_id, team, club,
		       powerscore_adj, powerscore, sao_norm, sad_norm, sos_norm,
		       gp_mult, matches_used, is_active, status, last_match_date
		FROM rankings
		WHERE state = $1 AND gender = $2 AND age_group = $3
		ORDER BY rank
	`

	rows, err := r.pool.Query(ctx, query, div.State, div.Gender, div.AgeGroup)
	if err != nil {
		return nil, fmt.Errorf("query rankings for %s: %w", div.Key(), err)
	}
	defer rows.Close()

	var out []contracts.RankedTeam
	for rows.Next() {
		var rt contracts.RankedTeam
		var status string
		if err := rows.Scan(
			&rt.Rank, &rt.TeamID, &rt.Team, &rt.Club,
			&rt.PowerScoreAdj, &rt.PowerScore, &rt.SAONorm, &rt.SADNorm, &rt.SOSNorm,
			&rt.GPMult, &rt.MatchesUsed, &rt.IsActive, &status, &rt.LastMatchDate,
		); err != nil {
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		rt.Status = contracts.Status(status)
		rt.Division = div
		out = append(out, rt)
	}
	return out, rows.Err()
}
