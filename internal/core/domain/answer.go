package domain

import "time"

// Conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Supported response languages, matching the language selector of the
// frontend. Korean is the store's native language: summaries are
// written in Korean and translated on read for other selections.
const (
	LangKorean     = "한국어 (Korean)"
	LangEnglish    = "English"
	LangVietnamese = "Tiếng Việt"
	LangChinese    = "中文"
)

// Turn is one message of a conversation
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the request-scoped chat history, owned by the caller
// and passed in by value. It is used for display only and is never fed
// back into the model prompt.
type Conversation struct {
	Turns []Turn `json:"turns,omitempty"`
}

// Question is the input to the answer pipeline
type Question struct {
	Text         string       `json:"text"`
	Language     string       `json:"language"`
	TopK         int          `json:"top_k,omitempty"`
	Conversation Conversation `json:"conversation,omitempty"`
}

// Answer is the output of the answer pipeline. Grounded is false when
// retrieval yielded nothing (or the store was unreachable) and the
// model answered from the persona instruction alone.
type Answer struct {
	Text     string        `json:"text"`
	Language string        `json:"language"`
	Grounded bool          `json:"grounded"`
	Sources  []string      `json:"sources,omitempty"`
	Took     time.Duration `json:"took" swaggertype:"integer" example:"1500000"`
}
