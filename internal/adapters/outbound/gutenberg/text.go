package gutenberg

import (
	"regexp"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
)

var (
	startMarkers = []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
		"THE INNOCENTS ABROAD",
	}
	endMarkers = []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of the Project Gutenberg",
	}

	excessNewlines = regexp.MustCompile(`\n{3,}`)
	runsOfBlanks   = regexp.MustCompile(`[ \t]+`)
	chapterHeader  = regexp.MustCompile(`(?m)(^|\n)(?:CHAPTER\s+)?([IVXLCDM]+)\.\s*\n`)
)

// CleanText removes the Project Gutenberg header and footer and normalizes whitespace.
// Markers are tried in order; the first one present wins.
func CleanText(raw string) string {
	start := 0
	for _, marker := range startMarkers {
		pos := strings.Index(raw, marker)
		if pos == -1 {
			continue
		}
		if nl := strings.IndexByte(raw[pos:], '\n'); nl != -1 {
			start = pos + nl + 1
		}
		break
	}

	end := len(raw)
	for _, marker := range endMarkers {
		if pos := strings.Index(raw, marker); pos != -1 {
			end = pos
			break
		}
	}
	if end < start {
		end = len(raw)
	}

	content := raw[start:end]
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = excessNewlines.ReplaceAllString(content, "\n\n")
	content = runsOfBlanks.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// SplitChapters segments cleaned text on roman numeral chapter headers such as
// "CHAPTER XII." or "XII.". The line following the header is the chapter title.
// Text before the first header is dropped.
func SplitChapters(text string) []domain.Section {
	matches := chapterHeader.FindAllStringSubmatchIndex(text, -1)
	sections := make([]domain.Section, 0, len(matches))
	for i, m := range matches {
		label := text[m[4]:m[5]]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		body := strings.TrimSpace(text[m[1]:end])
		title, content, found := strings.Cut(body, "\n")
		title = strings.TrimSpace(title)
		if found {
			content = strings.TrimSpace(content)
		} else {
			content = body
		}

		sections = append(sections, domain.Section{
			Label: label,
			Title: title,
			Text:  content,
		})
	}
	return sections
}
