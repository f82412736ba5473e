package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driving"
)

// Retrieval bounds for the answer pipeline
const (
	defaultTopK = 5
	minTopK     = 1
	maxTopK     = 15
)

// Ensure answerService implements AnswerService
var _ driving.AnswerService = (*answerService)(nil)

// answerService implements the answer pipeline. Retrieval is
// best-effort: when the embedder or the store is unreachable the
// prompt gets the no-match placeholder and the model answers from the
// persona alone. Only generation failures fail the request.
type answerService struct {
	embedder  driven.EmbeddingService
	documents driven.DocumentStore
	llm       driven.LLMService
	logger    *slog.Logger
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(
	embedder driven.EmbeddingService,
	documents driven.DocumentStore,
	llm driven.LLMService,
	logger *slog.Logger,
) driving.AnswerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &answerService{
		embedder:  embedder,
		documents: documents,
		llm:       llm,
		logger:    logger,
	}
}

// Answer runs the full pipeline and returns the whole response
func (s *answerService) Answer(ctx context.Context, q domain.Question) (*domain.Answer, error) {
	start := time.Now()
	prompt, grounded, sources, err := s.buildPrompt(ctx, &q)
	if err != nil {
		return nil, err
	}

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	return &domain.Answer{
		Text:     text,
		Language: q.Language,
		Grounded: grounded,
		Sources:  sources,
		Took:     time.Since(start),
	}, nil
}

// AnswerStream runs the same pipeline in token-stream mode
func (s *answerService) AnswerStream(ctx context.Context, q domain.Question) (<-chan string, <-chan error) {
	prompt, _, _, err := s.buildPrompt(ctx, &q)
	if err != nil {
		out := make(chan string)
		errCh := make(chan error, 1)
		errCh <- err
		close(out)
		close(errCh)
		return out, errCh
	}
	return s.llm.GenerateStream(ctx, prompt, driven.GenerateOptions{})
}

// buildPrompt validates the question, retrieves context and assembles
// the persona prompt. The returned flag reports whether retrieval
// found anything.
func (s *answerService) buildPrompt(ctx context.Context, q *domain.Question) (string, bool, []string, error) {
	if strings.TrimSpace(q.Text) == "" {
		return "", false, nil, fmt.Errorf("%w: question text is required", domain.ErrInvalidInput)
	}
	if q.Language == "" {
		q.Language = domain.LangKorean
	}
	if q.TopK <= 0 {
		q.TopK = defaultTopK
	}
	if q.TopK < minTopK {
		q.TopK = minTopK
	}
	if q.TopK > maxTopK {
		q.TopK = maxTopK
	}

	contextBlock, sources := s.retrieve(ctx, q.Text, q.TopK)
	grounded := contextBlock != noMatchContext

	prompt := fmt.Sprintf(answerPromptFmt, contextBlock, q.Text, q.Language)
	return prompt, grounded, sources, nil
}

// retrieve embeds the question and fetches the nearest chunks. Every
// failure path degrades to the placeholder rather than erroring.
func (s *answerService) retrieve(ctx context.Context, query string, k int) (string, []string) {
	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		s.logger.Warn("query embedding failed, answering ungrounded",
			"error", fmt.Errorf("%w: %v", domain.ErrRetrieval, err))
		return noMatchContext, nil
	}

	hits, err := s.documents.Query(ctx, vector, k)
	if err != nil {
		s.logger.Warn("vector search failed, answering ungrounded",
			"error", fmt.Errorf("%w: %v", domain.ErrRetrieval, err))
		return noMatchContext, nil
	}
	if len(hits) == 0 {
		return noMatchContext, nil
	}

	var (
		parts   []string
		sources []string
		seen    = make(map[string]bool)
	)
	for i, hit := range hits {
		src := hit.Document.Metadata[domain.MetaSource]
		label := fmt.Sprintf("[문서 %d]", i+1)
		if src != "" {
			label = fmt.Sprintf("[문서 %d | %s]", i+1, src)
			if !seen[src] {
				seen[src] = true
				sources = append(sources, src)
			}
		}
		parts = append(parts, label+"\n"+hit.Document.Content)
	}
	return strings.Join(parts, "\n\n---\n\n"), sources
}
