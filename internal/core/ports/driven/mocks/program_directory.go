package mocks

import (
	"context"
	"sync"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// MockProgramDirectory is a mock implementation of ProgramDirectory
// for testing
type MockProgramDirectory struct {
	mu       sync.RWMutex
	programs []domain.Program
	err      error
}

// NewMockProgramDirectory creates a new MockProgramDirectory
func NewMockProgramDirectory(programs ...domain.Program) *MockProgramDirectory {
	return &MockProgramDirectory{programs: programs}
}

func (m *MockProgramDirectory) Fetch(ctx context.Context) ([]domain.Program, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Program(nil), m.programs...), nil
}

// Helper methods for testing

// SetError makes subsequent Fetch calls fail
func (m *MockProgramDirectory) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetPrograms replaces the served listings
func (m *MockProgramDirectory) SetPrograms(programs []domain.Program) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.programs = programs
}
