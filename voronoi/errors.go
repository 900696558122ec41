package voronoi

import "errors"

var (
	// ErrTooFewSites indicates fewer than 3 sites were supplied.
	ErrTooFewSites = errors.New("voronoi: at least 3 sites are required")

	// ErrDuplicateSite indicates two sites coincide within tolerance.
	ErrDuplicateSite = errors.New("voronoi: duplicate site coordinates")
)
