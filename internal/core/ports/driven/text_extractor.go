package driven

// TextExtractor recovers plain text from a PDF byte buffer by
// extracting every page and concatenating the results. Image uploads
// are transcribed through the LLM vision path instead.
type TextExtractor interface {
	// ExtractText returns the concatenated page text of the document
	ExtractText(data []byte) (string, error)
}
