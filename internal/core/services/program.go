package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driving"
)

// statsTopN caps the program ranking in the admin dashboard
const statsTopN = 5

// Ensure programService implements ProgramService
var _ driving.ProgramService = (*programService)(nil)

// programService relays external program listings and records clicks
type programService struct {
	directory    driven.ProgramDirectory
	interactions driven.InteractionStore
	logger       *slog.Logger
}

// NewProgramService creates a new ProgramService
func NewProgramService(
	directory driven.ProgramDirectory,
	interactions driven.InteractionStore,
	logger *slog.Logger,
) driving.ProgramService {
	if logger == nil {
		logger = slog.Default()
	}
	return &programService{
		directory:    directory,
		interactions: interactions,
		logger:       logger,
	}
}

// Recommend returns the current program listings
func (s *programService) Recommend(ctx context.Context) ([]domain.Program, error) {
	programs, err := s.directory.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: program directory: %v", domain.ErrServiceUnavailable, err)
	}
	return programs, nil
}

// LogClick appends an interaction entry. A failed write is logged and
// swallowed; the click itself must always succeed.
func (s *programService) LogClick(ctx context.Context, lang, title, link string) {
	if title == "" {
		return
	}
	entry := &domain.InteractionLog{
		UserLang:     lang,
		ProgramTitle: title,
		ProgramLink:  link,
	}
	if err := s.interactions.Log(ctx, entry); err != nil {
		s.logger.Warn("interaction log write failed",
			"program", title, "lang", lang, "error", err)
	}
}

// Stats aggregates the interaction log for the admin dashboard
func (s *programService) Stats(ctx context.Context) (*domain.InteractionStats, error) {
	stats, err := s.interactions.Stats(ctx, statsTopN)
	if err != nil {
		return nil, fmt.Errorf("%w: interaction stats: %v", domain.ErrStorage, err)
	}
	return stats, nil
}
