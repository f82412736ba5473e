package structured

import (
	"errors"
	"strings"
	"testing"
)

type summaryPayload struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func TestDecode_PlainObject(t *testing.T) {
	var got summaryPayload
	err := Decode(`{"title":"현장학습 안내","summary":"4월 소풍 안내문"}`, &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "현장학습 안내" {
		t.Errorf("unexpected title: %q", got.Title)
	}
}

func TestDecode_ObjectWrappedInProse(t *testing.T) {
	reply := "Sure! Here is the summary you asked for:\n\n" +
		"```json\n{\"title\":\"Field Trip\",\"summary\":\"Permission slip due Friday\"}\n```\n" +
		"Let me know if you need anything else."

	var got summaryPayload
	if err := Decode(reply, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Field Trip" {
		t.Errorf("unexpected title: %q", got.Title)
	}
	if got.Summary != "Permission slip due Friday" {
		t.Errorf("unexpected summary: %q", got.Summary)
	}
}

func TestDecode_NoObject(t *testing.T) {
	var got summaryPayload
	err := Decode("I could not read the document.", &got)
	if err == nil {
		t.Fatal("expected error for reply without JSON")
	}
	if !errors.Is(err, ErrNoObject) {
		t.Errorf("expected ErrNoObject, got %v", err)
	}
}

func TestDecode_InvalidSpan(t *testing.T) {
	var got summaryPayload
	err := Decode(`the {braces} here are not JSON`, &got)
	if err == nil {
		t.Fatal("expected error for non-JSON span")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseError_BoundsRawPreview(t *testing.T) {
	long := strings.Repeat("x", 5000)
	_, err := ExtractObject(long)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(perr.Raw) > rawPreviewLimit {
		t.Errorf("raw preview not bounded: %d chars", len(perr.Raw))
	}
}

func TestExtractObject_NestedBraces(t *testing.T) {
	reply := `prefix {"title":"t","details":{"date":"2026-04-03","items":["a","b"]}} suffix`
	raw, err := ExtractObject(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(raw), `{"title"`) {
		t.Errorf("unexpected extraction: %s", raw)
	}
}
