package domain

import "time"

// Program is one entry from the external support-program listings
// (Danuri center programs). The listings source itself is external;
// the service only relays entries and records clicks.
type Program struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Date  string `json:"date"`
}

// InteractionLog records one user action on a recommended program.
// Entries are append-only; ClickedAt is assigned by the database.
type InteractionLog struct {
	ID           int64     `json:"id"`
	UserLang     string    `json:"user_lang"`
	ProgramTitle string    `json:"program_title"`
	ProgramLink  string    `json:"program_link"`
	ClickedAt    time.Time `json:"clicked_at"`
}

// ProgramClicks is a click count for one program title
type ProgramClicks struct {
	Title  string `json:"title"`
	Clicks int64  `json:"clicks"`
}

// LanguageCount is a usage count for one interface language
type LanguageCount struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

// InteractionStats aggregates the interaction log for the admin
// dashboard: most-clicked programs and per-language usage.
type InteractionStats struct {
	TopPrograms []ProgramClicks `json:"top_programs"`
	Languages   []LanguageCount `json:"languages"`
	Total       int64           `json:"total"`
}
