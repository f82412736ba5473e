package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven/mocks"
)

// stubCache is a map-backed TranslationCache for tests
type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *stubCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = payload
	c.sets++
	return nil
}

func putSummary(t *testing.T, objects *mocks.MockObjectStore, filename string, summary domain.NoticeSummary, age time.Duration) string {
	t.Helper()
	payload, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("marshaling summary: %v", err)
	}
	key := domain.AnalysisPrefix + filename + domain.SummarySuffix
	if err := objects.Put(context.Background(), key, payload, "application/json"); err != nil {
		t.Fatalf("storing summary: %v", err)
	}
	objects.SetModified(key, time.Now().Add(-age))
	return key
}

func newNoticeFixture() (*mocks.MockObjectStore, *mocks.MockLLMService, *stubCache, *noticeService) {
	objects := mocks.NewMockObjectStore()
	llm := mocks.NewMockLLMService()
	cache := newStubCache()
	svc := NewNoticeService(objects, llm, cache, time.Hour, nil)
	return objects, llm, cache, svc.(*noticeService)
}

func TestRecent_NewestFirstWithLimit(t *testing.T) {
	objects, _, _, svc := newNoticeFixture()
	putSummary(t, objects, "old.pdf", domain.NoticeSummary{Title: "지난 안내"}, 3*time.Hour)
	putSummary(t, objects, "newest.pdf", domain.NoticeSummary{Title: "최신 안내"}, 10*time.Minute)
	putSummary(t, objects, "mid.pdf", domain.NoticeSummary{Title: "중간 안내"}, time.Hour)

	notices, err := svc.Recent(context.Background(), 2, domain.LangKorean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notices) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(notices))
	}
	if notices[0].Source != "newest.pdf" || notices[1].Source != "mid.pdf" {
		t.Errorf("unexpected order: %s, %s", notices[0].Source, notices[1].Source)
	}
	if notices[0].Summary.Title != "최신 안내" {
		t.Errorf("unexpected title: %q", notices[0].Summary.Title)
	}
}

func TestRecent_SkipsCorruptSummary(t *testing.T) {
	objects, _, _, svc := newNoticeFixture()
	putSummary(t, objects, "good.pdf", domain.NoticeSummary{Title: "정상"}, time.Minute)
	_ = objects.Put(context.Background(), domain.AnalysisPrefix+"bad.pdf.json", []byte("not json"), "application/json")

	notices, err := svc.Recent(context.Background(), 10, domain.LangKorean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notices) != 1 || notices[0].Source != "good.pdf" {
		t.Errorf("expected only the readable summary, got %v", notices)
	}
}

func TestTranslate_KoreanPassThrough(t *testing.T) {
	_, llm, _, svc := newNoticeFixture()
	summary := domain.NoticeSummary{Title: "급식 안내"}

	got, err := svc.Translate(context.Background(), "analysis/a.pdf.json", summary, domain.LangKorean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "급식 안내" {
		t.Errorf("unexpected title: %q", got.Title)
	}
	if len(llm.Prompts()) != 0 {
		t.Error("Korean reads must not call the model")
	}
}

func TestTranslate_TranslatesAndCaches(t *testing.T) {
	_, llm, cache, svc := newNoticeFixture()
	llm.QueueResponse(`{"title":"Lunch Menu","summary":"This month's menu.","details":{"date":"N/A"}}`)
	summary := domain.NoticeSummary{
		Title:   "급식 안내",
		Summary: "이번 달 식단입니다.",
		Details: domain.NoticeDetails{Date: "N/A"},
	}

	got, err := svc.Translate(context.Background(), "analysis/menu.pdf.json", summary, domain.LangEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Lunch Menu" {
		t.Errorf("unexpected translated title: %q", got.Title)
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", cache.sets)
	}

	// Second read is served from cache without another model call
	got, err = svc.Translate(context.Background(), "analysis/menu.pdf.json", summary, domain.LangEnglish)
	if err != nil {
		t.Fatalf("unexpected error on cached read: %v", err)
	}
	if got.Title != "Lunch Menu" {
		t.Errorf("unexpected cached title: %q", got.Title)
	}
	if n := len(llm.Prompts()); n != 1 {
		t.Errorf("expected 1 model call total, got %d", n)
	}
}

func TestTranslate_FailureFallsBackToKorean(t *testing.T) {
	objects, llm, _, svc := newNoticeFixture()
	putSummary(t, objects, "notice.pdf", domain.NoticeSummary{Title: "안내문"}, time.Minute)
	llm.SetError(errors.New("model overloaded"))

	// Direct call surfaces the failure with the original text
	got, err := svc.Translate(context.Background(), "analysis/notice.pdf.json",
		domain.NoticeSummary{Title: "안내문"}, domain.LangVietnamese)
	if err == nil {
		t.Fatal("expected translation error")
	}
	if got.Title != "안내문" {
		t.Errorf("fallback must keep Korean text, got %q", got.Title)
	}

	// The dashboard listing swallows it and serves Korean
	notices, err := svc.Recent(context.Background(), 10, domain.LangVietnamese)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notices) != 1 || notices[0].Summary.Title != "안내문" {
		t.Errorf("expected Korean fallback in listing, got %v", notices)
	}
}

func TestTranslate_PreservesDateField(t *testing.T) {
	_, llm, _, svc := newNoticeFixture()
	llm.QueueResponse(`{"title":"Field Trip","summary":"Trip info.","details":{"date":"April 3rd"}}`)
	summary := domain.NoticeSummary{
		Title:   "현장학습",
		Details: domain.NoticeDetails{Date: "2026-04-03"},
	}

	got, err := svc.Translate(context.Background(), "analysis/t.pdf.json", summary, domain.LangEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Details.Date != "2026-04-03" {
		t.Errorf("date must survive translation untouched, got %q", got.Details.Date)
	}
}
