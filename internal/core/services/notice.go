package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driving"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/structured"
)

// DefaultTranslationTTL bounds how long a translated summary is served
// from cache
const DefaultTranslationTTL = time.Hour

const defaultRecentLimit = 20

// Ensure noticeService implements NoticeService
var _ driving.NoticeService = (*noticeService)(nil)

// noticeService serves the dashboard from the analysis/ prefix of the
// object store. Summaries are stored in Korean; other languages are
// translated on read through the model, behind a TTL cache.
type noticeService struct {
	objects driven.ObjectStore
	llm     driven.LLMService
	cache   driven.TranslationCache
	ttl     time.Duration
	logger  *slog.Logger
}

// NewNoticeService creates a new NoticeService. A nil cache disables
// translation caching.
func NewNoticeService(
	objects driven.ObjectStore,
	llm driven.LLMService,
	cache driven.TranslationCache,
	ttl time.Duration,
	logger *slog.Logger,
) driving.NoticeService {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = DefaultTranslationTTL
	}
	return &noticeService{
		objects: objects,
		llm:     llm,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

// Recent returns up to limit summaries, most recently written first
func (s *noticeService) Recent(ctx context.Context, limit int, lang string) ([]domain.Notice, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	infos, err := s.objects.List(ctx, domain.AnalysisPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: listing summaries: %v", domain.ErrStorage, err)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].LastModified.After(infos[j].LastModified)
	})
	if limit < len(infos) {
		infos = infos[:limit]
	}

	notices := make([]domain.Notice, 0, len(infos))
	for _, info := range infos {
		payload, err := s.objects.Get(ctx, info.Key)
		if err != nil {
			s.logger.Warn("summary unreadable, skipping", "key", info.Key, "error", err)
			continue
		}
		var summary domain.NoticeSummary
		if err := json.Unmarshal(payload, &summary); err != nil {
			s.logger.Warn("summary not valid JSON, skipping", "key", info.Key, "error", err)
			continue
		}

		if translated, err := s.Translate(ctx, info.Key, summary, lang); err == nil {
			summary = translated
		} else {
			s.logger.Warn("translation failed, serving Korean text",
				"key", info.Key, "lang", lang, "error", err)
		}

		notices = append(notices, domain.Notice{
			Key:          info.Key,
			Source:       sourceFromKey(info.Key),
			Summary:      summary,
			LastModified: info.LastModified.Unix(),
		})
	}
	return notices, nil
}

// Translate translates one summary into lang. Korean and the empty
// language are pass-throughs.
func (s *noticeService) Translate(ctx context.Context, key string, summary domain.NoticeSummary, lang string) (domain.NoticeSummary, error) {
	if lang == "" || lang == domain.LangKorean {
		return summary, nil
	}

	cacheKey := translationCacheKey(key, lang)
	if s.cache != nil {
		if payload, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
			var cached domain.NoticeSummary
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
		}
	}

	source, err := json.Marshal(summary)
	if err != nil {
		return summary, fmt.Errorf("encoding summary for translation: %w", err)
	}
	reply, err := s.llm.Generate(ctx, fmt.Sprintf(translatePromptFmt, lang, source), driven.GenerateOptions{JSONMode: true})
	if err != nil {
		return summary, fmt.Errorf("%w: translation: %v", domain.ErrGeneration, err)
	}

	var translated domain.NoticeSummary
	if err := structured.Decode(reply, &translated); err != nil {
		return summary, fmt.Errorf("translation output: %w", err)
	}
	// The date field is data, not prose; a model that rewrote it is
	// overridden with the stored value.
	translated.Details.Date = summary.Details.Date

	if s.cache != nil {
		if payload, err := json.Marshal(translated); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.ttl); err != nil {
				s.logger.Warn("translation cache write failed", "key", cacheKey, "error", err)
			}
		}
	}
	return translated, nil
}

func translationCacheKey(key, lang string) string {
	return "translation:" + lang + ":" + key
}

// sourceFromKey recovers the original filename from a summary key
func sourceFromKey(key string) string {
	return strings.TrimSuffix(strings.TrimPrefix(key, domain.AnalysisPrefix), domain.SummarySuffix)
}
