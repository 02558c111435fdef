package gutenberg

import (
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := map[string]struct {
		raw      string
		expected string
	}{
		"strips-header-and-footer": {
			raw: "Preamble\r\n*** START OF THE PROJECT GUTENBERG EBOOK 3176 ***\r\n" +
				"Body   line\r\n\r\n\r\n\r\nNext\t\tline\r\n" +
				"*** END OF THE PROJECT GUTENBERG EBOOK 3176 ***\r\nLicense",
			expected: "Body line\n\nNext line",
		},
		"alternate-markers": {
			raw:      "x\n*** START OF THIS PROJECT GUTENBERG EBOOK ***\nhello\nEnd of the Project Gutenberg etext",
			expected: "hello",
		},
		"title-marker-fallback": {
			raw:      "Header\nTHE INNOCENTS ABROAD\nBy Mark Twain\n",
			expected: "By Mark Twain",
		},
		"no-markers": {
			raw:      "  plain text  ",
			expected: "plain text",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.raw))
		})
	}
}

func TestSplitChapters(t *testing.T) {
	tests := map[string]struct {
		text     string
		expected []domain.Section
	}{
		"chapter-prefixed-headers": {
			text: "Preface text.\n\nCHAPTER I.\nPopular Talk of the Excursion\nIt was a long time ago.\n\n" +
				"CHAPTER II.\nGrand Preparations\nWe were to sail.",
			expected: []domain.Section{
				{Label: "I", Title: "Popular Talk of the Excursion", Text: "It was a long time ago."},
				{Label: "II", Title: "Grand Preparations", Text: "We were to sail."},
			},
		},
		"bare-roman-headers": {
			text: "XIV.\nThe Azores\nFayal is lovely.\nXV.\nGibraltar\nThe rock.",
			expected: []domain.Section{
				{Label: "XIV", Title: "The Azores", Text: "Fayal is lovely."},
				{Label: "XV", Title: "Gibraltar", Text: "The rock."},
			},
		},
		"title-only-chapter": {
			text: "CHAPTER LX.\nConclusion",
			expected: []domain.Section{
				{Label: "LX", Title: "Conclusion", Text: "Conclusion"},
			},
		},
		"no-headers": {
			text:     "Nothing that looks like a chapter.",
			expected: []domain.Section{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitChapters(tt.text))
		})
	}
}
