package driven

import (
	"context"
)

// GenerateOptions tunes a single generation call
type GenerateOptions struct {
	// JSONMode asks the model to emit a single JSON object. Callers
	// still run the lenient parser over the reply; not every provider
	// honors the flag.
	JSONMode bool

	// MaxTokens caps the completion length. Zero means provider default.
	MaxTokens int
}

// ImageInput is an image passed to a vision-capable model
type ImageInput struct {
	Data     []byte
	MimeType string
}

// LLMService provides text generation for summarization, translation
// and question answering
type LLMService interface {
	// Generate returns a whole-response completion for the prompt
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// GenerateVision returns a completion for a prompt plus one image,
	// used to transcribe text out of photographed notices
	GenerateVision(ctx context.Context, prompt string, image ImageInput, opts GenerateOptions) (string, error)

	// GenerateStream returns a channel of text fragments as the model
	// produces them. The channel is closed when the completion ends or
	// ctx is cancelled; the sequence is finite and not restartable.
	// A call-level failure is reported on the error channel, which
	// receives at most one value.
	GenerateStream(ctx context.Context, prompt string, opts GenerateOptions) (<-chan string, <-chan error)

	// Model returns the model name being used
	Model() string

	// Ping verifies the service is available
	Ping(ctx context.Context) error

	// Close releases resources held by the service
	Close() error
}
