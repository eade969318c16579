package services

import "context"

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

func ensuredContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// normalisePage clamps limit/offset to the documented bounds: limit defaults
// to 50 and is capped at 100, offset is never negative.
func normalisePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
