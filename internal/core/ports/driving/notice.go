package driving

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// NoticeService serves the dashboard: recently analyzed notices,
// translated into the caller's language on read.
type NoticeService interface {
	// Recent returns up to limit summaries, most recently written
	// first. Summaries are translated when lang is not Korean; a
	// translation failure falls back to the stored Korean text.
	Recent(ctx context.Context, limit int, lang string) ([]domain.Notice, error)

	// Translate translates one summary into lang, preserving the key
	// set and non-string values. Korean is a pass-through.
	Translate(ctx context.Context, key string, summary domain.NoticeSummary, lang string) (domain.NoticeSummary, error)
}
