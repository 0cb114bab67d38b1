package contracts

import (
	"context"
	"time"
)

// MatchSource is the acquisition boundary. Implementations return the full
// raw match table for one division; one row per team perspective. Crawling,
// checkpointing and file formats live behind this interface.
type MatchSource interface {
	Matches(ctx context.Context, div Division) ([]RawMatch, error)
}

// ResultSink receives the fully materialized ranking table for a division.
// Implementations must replace any previous table for the same division
// atomically.
type ResultSink interface {
	WriteRankings(ctx context.Context, div Division, asOf time.Time, configHash string, rows []RankedTeam) error
}

// IdentityResolver is the identity-resolution boundary. It returns the alias
// map for a division: raw team id -> canonical team id. The ranking core only
// applies the map; fuzzy name matching happens upstream.
type IdentityResolver interface {
	AliasMap(ctx context.Context, div Division) (map[string]string, error)
}

// BuildRegistry is the snapshot-registry boundary: which data build is
// "latest" for a division.
type BuildRegistry interface {
	LatestBuild(ctx context.Context, div Division) (string, error)
}
