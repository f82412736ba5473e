package driving

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// ProgramService relays external program listings and records clicks
type ProgramService interface {
	// Recommend returns the current program listings
	Recommend(ctx context.Context) ([]domain.Program, error)

	// LogClick appends an interaction entry. Logging failures are
	// swallowed: a click must never fail because analytics is down.
	LogClick(ctx context.Context, lang, title, link string)

	// Stats aggregates the interaction log for the admin dashboard
	Stats(ctx context.Context) (*domain.InteractionStats, error)
}
