package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/chunker"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driving"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/structured"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/textnorm"
)

// Ensure ingestService implements IngestService
var _ driving.IngestService = (*ingestService)(nil)

// ingestService implements the ingestion pipeline: persist raw,
// extract text, summarize, persist summary, then chunk/embed/index.
// Steps are ordered by durability; each failure leaves everything
// before it in place.
type ingestService struct {
	objects   driven.ObjectStore
	extractor driven.TextExtractor
	llm       driven.LLMService
	embedder  driven.EmbeddingService
	documents driven.DocumentStore
	chunker   *chunker.Chunker
	logger    *slog.Logger
}

// IngestConfig holds the dependencies of the ingestion service
type IngestConfig struct {
	Objects   driven.ObjectStore
	Extractor driven.TextExtractor
	LLM       driven.LLMService
	Embedder  driven.EmbeddingService
	Documents driven.DocumentStore
	Chunker   *chunker.Chunker
	Logger    *slog.Logger
}

// NewIngestService creates a new IngestService
func NewIngestService(cfg IngestConfig) driving.IngestService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := cfg.Chunker
	if c == nil {
		c = chunker.New(chunker.DefaultWindow, chunker.DefaultOverlap)
	}
	return &ingestService{
		objects:   cfg.Objects,
		extractor: cfg.Extractor,
		llm:       cfg.LLM,
		embedder:  cfg.Embedder,
		documents: cfg.Documents,
		chunker:   c,
		logger:    logger,
	}
}

// Ingest processes one upload end to end
func (s *ingestService) Ingest(ctx context.Context, upload domain.Upload) (*domain.IngestResult, error) {
	if upload.Filename == "" || len(upload.Data) == 0 {
		return nil, fmt.Errorf("%w: filename and data are required", domain.ErrInvalidInput)
	}
	mediaType, ok := domain.MediaTypeForExt(upload.Ext())
	if !ok {
		return nil, fmt.Errorf("%w: unsupported file type %q", domain.ErrInvalidInput, upload.Ext())
	}
	upload.MediaType = mediaType

	start := time.Now()
	result := &domain.IngestResult{
		RawKey:     upload.RawKey(),
		SummaryKey: upload.SummaryKey(),
	}

	// 1. Persist the raw upload. Nothing is durable yet, so a failure
	// here aborts the request.
	if err := s.objects.Put(ctx, result.RawKey, upload.Data, contentTypeFor(upload)); err != nil {
		return nil, fmt.Errorf("%w: persisting raw upload: %v", domain.ErrStorage, err)
	}

	// 2. Extract text
	text, err := s.extractText(ctx, upload)
	if err != nil {
		return nil, err
	}

	// 3. Summarize into the structured shape
	summary, err := s.summarize(ctx, text)
	if err != nil {
		return nil, err
	}
	result.Summary = summary

	// 4. Persist the summary. The dashboard reads from here, so this
	// write is required before indexing.
	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding summary: %v", domain.ErrStorage, err)
	}
	if err := s.objects.Put(ctx, result.SummaryKey, payload, "application/json"); err != nil {
		return nil, fmt.Errorf("%w: persisting summary: %v", domain.ErrStorage, err)
	}

	// 5. Chunk, embed and index. The notice is already durable, so a
	// failure here is reported inside the result, not as an error.
	chunks := s.chunker.Chunk(text)
	result.Chunks = len(chunks)
	if err := s.index(ctx, upload, summary, chunks); err != nil {
		s.logger.Warn("indexing failed, notice stored without search",
			"file", upload.Filename, "error", err)
		result.IndexError = err.Error()
		return result, nil
	}
	result.Indexed = true

	s.logger.Info("notice ingested",
		"file", upload.Filename,
		"chunks", result.Chunks,
		"took", time.Since(start))
	return result, nil
}

// extractText recovers plain text from the upload: native extraction
// for PDFs, vision transcription for photos.
func (s *ingestService) extractText(ctx context.Context, upload domain.Upload) (string, error) {
	var (
		text string
		err  error
	)
	switch upload.MediaType {
	case domain.MediaTypePDF:
		text, err = s.extractor.ExtractText(upload.Data)
	case domain.MediaTypeImage:
		text, err = s.llm.GenerateVision(ctx, visionTranscribePrompt, driven.ImageInput{
			Data:     upload.Data,
			MimeType: "image/" + upload.Ext(),
		}, driven.GenerateOptions{})
	default:
		return "", fmt.Errorf("%w: unsupported media type %q", domain.ErrInvalidInput, upload.MediaType)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	text = textnorm.Clean(text)
	if text == "" {
		return "", fmt.Errorf("%w: document yielded no text", domain.ErrExtraction)
	}
	return text, nil
}

// summarizeInputLimit caps how much extracted text goes into the
// summarization prompt. Notices front-load the essentials; the tail of
// a long PDF is attachment boilerplate.
const summarizeInputLimit = 3000

// summarize asks the model for the structured summary and parses the
// reply leniently
func (s *ingestService) summarize(ctx context.Context, text string) (*domain.NoticeSummary, error) {
	if runes := []rune(text); len(runes) > summarizeInputLimit {
		text = string(runes[:summarizeInputLimit])
	}
	reply, err := s.llm.Generate(ctx, fmt.Sprintf(summarizePromptFmt, text), driven.GenerateOptions{JSONMode: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSummarization, err)
	}

	var summary domain.NoticeSummary
	if err := structured.Decode(reply, &summary); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSummarization, err)
	}
	if summary.Title == "" && summary.Summary == "" {
		return nil, fmt.Errorf("%w: reply carried no usable fields", domain.ErrSummarization)
	}
	if summary.Details.Date == "" {
		summary.Details.Date = "N/A"
	}
	return &summary, nil
}

// index embeds every chunk and writes the records in one batch
func (s *ingestService) index(ctx context.Context, upload domain.Upload, summary *domain.NoticeSummary, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}
	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: embedding chunks: %v", domain.ErrStorage, err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("%w: embedder returned %d vectors for %d chunks",
			domain.ErrStorage, len(vectors), len(chunks))
	}

	now := time.Now()
	docs := make([]*domain.Document, len(chunks))
	for i, c := range chunks {
		meta := map[string]string{
			domain.MetaSource: upload.Filename,
			domain.MetaType:   upload.Ext(),
		}
		if summary.Details.Date != "" && summary.Details.Date != "N/A" {
			meta[domain.MetaDate] = summary.Details.Date
		}
		docs[i] = &domain.Document{
			ID:        uuid.New().String(),
			Content:   c.Content,
			Embedding: vectors[i],
			Metadata:  meta,
			CreatedAt: now,
		}
	}
	if err := s.documents.InsertBatch(ctx, docs); err != nil {
		if errors.Is(err, domain.ErrDimensionMismatch) {
			return err
		}
		return fmt.Errorf("%w: inserting documents: %v", domain.ErrStorage, err)
	}
	return nil
}

func contentTypeFor(upload domain.Upload) string {
	switch upload.MediaType {
	case domain.MediaTypePDF:
		return "application/pdf"
	case domain.MediaTypeImage:
		return "image/" + upload.Ext()
	default:
		return "application/octet-stream"
	}
}
