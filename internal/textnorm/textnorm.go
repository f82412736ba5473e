// Package textnorm cleans text recovered from notices before it is
// summarized and chunked. PDF extraction and vision transcription both
// produce ragged output: mixed line endings, runs of spaces from
// table layouts, and long stretches of blank lines.
package textnorm

import "strings"

// Clean normalizes line endings, collapses horizontal whitespace runs
// and limits consecutive blank lines to one
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ReplaceAll(text, "\t", " ")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = collapseSpaces(strings.TrimSpace(line))
		if line == "" {
			// Keep at most one blank line between paragraphs
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
