// Package directory serves support-program listings. The entries are
// curated in configuration and updated by redeploy; the upstream
// listings page has no API to pull from.
package directory

import (
	"context"
	"sort"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ProgramDirectory = (*Static)(nil)

// Static implements driven.ProgramDirectory over a fixed list
type Static struct {
	programs []domain.Program
}

// NewStatic creates a directory serving the given entries, newest
// first by date
func NewStatic(programs []domain.Program) *Static {
	sorted := append([]domain.Program(nil), programs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return &Static{programs: sorted}
}

// Fetch returns the current program listings
func (s *Static) Fetch(ctx context.Context) ([]domain.Program, error) {
	return append([]domain.Program(nil), s.programs...), nil
}
