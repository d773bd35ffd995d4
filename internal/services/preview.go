package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// previewPolicy keeps only harmless formatting in note previews. Anything
// outside the allow list (scripts included) is stripped, not escaped.
var previewPolicy = newPreviewPolicy()

func newPreviewPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "u", "em", "strong", "p", "br", "ul", "ol", "li", "blockquote")
	p.AllowAttrs("href", "title", "target").OnElements("a")
	p.AllowStandardURLs()
	return p
}

// NotePreview sanitizes a note body down to the formatting allow list and
// truncates it to at most limit runes. The truncated string is run through
// the policy a second time so a cut cannot leave a dangling open tag.
func NotePreview(body string, limit int) string {
	clean := previewPolicy.Sanitize(body)
	if truncated := truncateRunes(clean, limit); truncated != clean {
		clean = previewPolicy.Sanitize(truncated)
	}
	return strings.TrimSpace(clean)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
