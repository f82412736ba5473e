package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// MockLLMService is a mock implementation of LLMService for testing.
// Responses are served in FIFO order; when the queue is empty a canned
// reply echoing the prompt head is returned.
type MockLLMService struct {
	mu        sync.Mutex
	responses []string
	prompts   []string
	images    []driven.ImageInput
	err       error
	streamErr error
}

// NewMockLLMService creates a new MockLLMService
func NewMockLLMService() *MockLLMService {
	return &MockLLMService{}
}

func (m *MockLLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.nextResponse(prompt), nil
}

func (m *MockLLMService) GenerateVision(ctx context.Context, prompt string, image driven.ImageInput, opts driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	m.images = append(m.images, image)
	if m.err != nil {
		return "", m.err
	}
	return m.nextResponse(prompt), nil
}

func (m *MockLLMService) GenerateStream(ctx context.Context, prompt string, opts driven.GenerateOptions) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	streamErr := m.streamErr
	full := ""
	if streamErr == nil {
		full = m.nextResponse(prompt)
	}
	m.mu.Unlock()

	go func() {
		defer close(out)
		defer close(errCh)
		if streamErr != nil {
			errCh <- streamErr
			return
		}
		// Emit word-sized fragments to exercise reassembly
		for _, word := range strings.SplitAfter(full, " ") {
			select {
			case out <- word:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()
	return out, errCh
}

func (m *MockLLMService) Model() string {
	return "mock-llm-model"
}

func (m *MockLLMService) Ping(ctx context.Context) error {
	return nil
}

func (m *MockLLMService) Close() error {
	return nil
}

func (m *MockLLMService) nextResponse(prompt string) string {
	if len(m.responses) > 0 {
		resp := m.responses[0]
		m.responses = m.responses[1:]
		return resp
	}
	head := prompt
	if len(head) > 40 {
		head = head[:40]
	}
	return "mock response to: " + head
}

// Helper methods for testing

// QueueResponse appends a canned reply to the FIFO queue
func (m *MockLLMService) QueueResponse(resp string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// SetError makes every subsequent generation call fail
func (m *MockLLMService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetStreamError makes subsequent streaming calls fail
func (m *MockLLMService) SetStreamError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streamErr = err
}

// Prompts returns every prompt seen so far
func (m *MockLLMService) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// LastPrompt returns the most recent prompt, or ""
func (m *MockLLMService) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Images returns every vision image seen so far
func (m *MockLLMService) Images() []driven.ImageInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]driven.ImageInput(nil), m.images...)
}
