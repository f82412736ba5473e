package driving

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// AnswerService answers free-text questions about school life,
// grounded in stored notices when retrieval succeeds and ungrounded
// when it does not. Retrieval failures degrade to an ungrounded
// answer; only a generation failure fails the request.
type AnswerService interface {
	// Answer runs the full pipeline and returns the whole response
	Answer(ctx context.Context, q domain.Question) (*domain.Answer, error)

	// AnswerStream runs the same pipeline in token-stream mode. Text
	// fragments arrive on the first channel until the completion ends
	// or ctx is cancelled; a call-level failure arrives on the second.
	AnswerStream(ctx context.Context, q domain.Question) (<-chan string, <-chan error)
}
