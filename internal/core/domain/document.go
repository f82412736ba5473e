package domain

import "time"

// Metadata keys attached to every stored document record
const (
	MetaSource = "source" // original filename
	MetaType   = "type"   // file extension
	MetaDate   = "date"   // extracted date, when known
)

// Document is one stored unit of ingested knowledge: a single chunk of
// extracted text together with its embedding. Records are created once
// per chunk and never updated or deleted.
type Document struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Embedding []float32         `json:"embedding,omitempty"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}

// ScoredDocument is a retrieval hit: a document record with its vector
// distance to the query. Lower distance means more similar.
type ScoredDocument struct {
	Document *Document `json:"document"`
	Distance float64   `json:"distance"`
}

// Chunk is a bounded slice of a larger extracted text, produced by the
// chunker before embedding. Position is the chunk index within the
// source text.
type Chunk struct {
	Content   string `json:"content"`
	Position  int    `json:"position"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
}
