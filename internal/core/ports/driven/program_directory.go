package driven

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// ProgramDirectory lists support programs from an external source
// (e.g. the Danuri center listings page). How the entries are obtained
// is an adapter concern; the core only relays them.
type ProgramDirectory interface {
	// Fetch returns the current program listings, newest first
	Fetch(ctx context.Context) ([]domain.Program, error)
}
