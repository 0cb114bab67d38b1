package ranking

import "errors"

var (
	// ErrMissingColumn means a required column is absent from the input
	// table. Structurally invalid input aborts the division's run.
	ErrMissingColumn = errors.New("required column missing from match table")

	// ErrBrokenLinkage means too many rows lack a resolvable opponent id,
	// which indicates identity resolution is broken upstream.
	ErrBrokenLinkage = errors.New("opponent linkage broken")
)
