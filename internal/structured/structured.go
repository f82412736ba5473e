// Package structured extracts a JSON object from a generative model's
// text reply, which may contain prose around the object. The parse is
// best-effort: it takes the substring from the first '{' to the last
// '}' and decodes that. Stray braces inside surrounding prose can make
// the parse fail or pick the wrong span; callers get a typed failure
// rather than a panic, and should prefer the provider's JSON response
// mode where available.
package structured

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoObject indicates the reply contains no brace-delimited object
var ErrNoObject = errors.New("no JSON object in model output")

// ParseError reports an unusable model reply. Raw carries a bounded
// prefix of the offending output for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("structured output parse failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const rawPreviewLimit = 200

func newParseError(raw string, err error) *ParseError {
	if len(raw) > rawPreviewLimit {
		raw = raw[:rawPreviewLimit]
	}
	return &ParseError{Raw: raw, Err: err}
}

// ExtractObject returns the brace-delimited JSON object embedded in
// the reply, validated as syntactically correct JSON.
func ExtractObject(reply string) (json.RawMessage, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, newParseError(reply, ErrNoObject)
	}

	candidate := []byte(reply[start : end+1])
	if !json.Valid(candidate) {
		return nil, newParseError(reply, errors.New("extracted span is not valid JSON"))
	}
	return json.RawMessage(candidate), nil
}

// Decode extracts the embedded JSON object and unmarshals it into v
func Decode(reply string, v any) error {
	raw, err := ExtractObject(reply)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return newParseError(reply, err)
	}
	return nil
}
