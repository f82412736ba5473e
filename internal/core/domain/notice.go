package domain

import (
	"path"
	"strings"
)

// Object store key namespaces. Raw uploads and derived summaries live
// in separate prefixes; a summary is keyed by the original filename
// plus the .json suffix.
const (
	RawPrefix      = "raw/"
	AnalysisPrefix = "analysis/"
	SummarySuffix  = ".json"
)

// MediaType declares what kind of file an upload is
type MediaType string

const (
	MediaTypePDF   MediaType = "pdf"
	MediaTypeImage MediaType = "image"
)

// Upload is the input to the ingestion pipeline: one file as received
// from the caller.
type Upload struct {
	Filename  string    `json:"filename"`
	MediaType MediaType `json:"media_type"`
	Data      []byte    `json:"-"`
}

// Ext returns the lower-cased file extension without the dot
func (u Upload) Ext() string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(u.Filename)), ".")
}

// RawKey returns the object key for the unmodified upload
func (u Upload) RawKey() string {
	return RawPrefix + u.Filename
}

// SummaryKey returns the object key for the derived summary
func (u Upload) SummaryKey() string {
	return AnalysisPrefix + u.Filename + SummarySuffix
}

// MediaTypeForExt maps a file extension to a media type. Unknown
// extensions are not ingestable.
func MediaTypeForExt(ext string) (MediaType, bool) {
	switch strings.ToLower(ext) {
	case "pdf":
		return MediaTypePDF, true
	case "jpg", "jpeg", "png":
		return MediaTypeImage, true
	default:
		return "", false
	}
}

// NoticeDetails holds the structured fields extracted from a notice.
// Date is an ISO-8601 date or "N/A"; Items lists preparation items and
// may be absent.
type NoticeDetails struct {
	Date  string   `json:"date"`
	Items []string `json:"items,omitempty"`
}

// NoticeSummary is the structured derivative of one ingested file,
// stored as a JSON blob under the analysis/ prefix. Immutable once
// written; re-ingesting the same filename overwrites it.
type NoticeSummary struct {
	Title   string        `json:"title"`
	Summary string        `json:"summary"`
	Details NoticeDetails `json:"details"`
}

// Notice pairs a summary with its object-store location, as returned
// by the dashboard listing.
type Notice struct {
	Key          string        `json:"key"`
	Source       string        `json:"source"`
	Summary      NoticeSummary `json:"summary"`
	LastModified int64         `json:"last_modified"`
}

// IngestResult reports what the ingestion pipeline accomplished.
// Indexed is false when embedding or indexing failed after the raw
// file and summary were already durable; IndexError then carries the
// surfaced failure.
type IngestResult struct {
	RawKey     string         `json:"raw_key"`
	SummaryKey string         `json:"summary_key"`
	Summary    *NoticeSummary `json:"summary"`
	Chunks     int            `json:"chunks"`
	Indexed    bool           `json:"indexed"`
	IndexError string         `json:"index_error,omitempty"`
}
