package memory

import (
	"context"
	"testing"
	"time"
)

func TestTranslationCache_MissThenHit(t *testing.T) {
	cache := NewTranslationCache()

	_, ok, err := cache.Get(context.Background(), "k")
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := cache.Set(context.Background(), "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := cache.Get(context.Background(), "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(got) != "v" {
		t.Errorf("unexpected payload: %q", got)
	}
}

func TestTranslationCache_Expiry(t *testing.T) {
	cache := NewTranslationCache()
	current := time.Now()
	cache.now = func() time.Time { return current }

	_ = cache.Set(context.Background(), "k", []byte("v"), time.Hour)

	current = current.Add(2 * time.Hour)
	_, ok, err := cache.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected miss after expiry")
	}
}

func TestTranslationCache_CopiesPayload(t *testing.T) {
	cache := NewTranslationCache()
	payload := []byte("original")
	_ = cache.Set(context.Background(), "k", payload, time.Hour)
	payload[0] = 'X'

	got, _, _ := cache.Get(context.Background(), "k")
	if string(got) != "original" {
		t.Errorf("cache must not alias caller buffers, got %q", got)
	}
}
