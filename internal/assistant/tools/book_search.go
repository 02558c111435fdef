package tools

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
)

const (
	BookSearchToolName = "search_twain_book"

	focusPassages = "passages"
	focusPlaces   = "places"
)

var romanNumeral = regexp.MustCompile(`^[IVXLC]+$`)

// BookSearchTool searches the book passages and formats them with chapter citations.
type BookSearchTool struct {
	searcher usecases.SearchPassages
	topK     int
	logger   *log.Logger
}

// NewBookSearchTool creates a new instance of BookSearchTool.
func NewBookSearchTool(searcher usecases.SearchPassages, topK int, logger *log.Logger) BookSearchTool {
	return BookSearchTool{
		searcher: searcher,
		topK:     topK,
		logger:   logger,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t BookSearchTool) StatusMessage() string {
	return "📖 Searching The Innocents Abroad..."
}

// Definition returns the tool definition for BookSearchTool.
func (t BookSearchTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name: BookSearchToolName,
		Description: "Search Mark Twain's 'The Innocents Abroad' for what Twain wrote about a place, " +
			"a topic or an experience. Returns passages with chapter citations.",
		Hints: domain.ToolHints{
			UseWhen: "Use for any question about Twain's travels, opinions or descriptions of places.\n" +
				"- Use focus=places to list the places Twain visited in a country or region.",
			AvoidWhen: "Do not use for current conditions or modern facts; use get_weather for weather.",
			ArgRules:  "Required key: query. Optional keys: chapter (roman numeral), focus (passages|places). No extra keys.",
		},
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"query": {
					Type:        "string",
					Description: "Natural language query, or the country/region when focus is places. REQUIRED.",
					Required:    true,
				},
				"chapter": {
					Type:        "string",
					Description: "Restrict the search to one chapter, e.g. \"XXIII\".",
				},
				"focus": {
					Type:        "string",
					Description: "passages (default) returns cited passages; places lists references to places visited in a region.",
					Enum:        []string{focusPassages, focusPlaces},
				},
			},
		},
	}
}

// Invoke executes BookSearchTool.
func (t BookSearchTool) Invoke(ctx context.Context, call domain.ToolCall) domain.ToolResult {
	params := struct {
		Query   string `json:"query"`
		Chapter string `json:"chapter"`
		Focus   string `json:"focus"`
	}{}

	exampleArgs := `{"query":"What did Twain think of the Sphinx?"}`

	if err := unmarshalToolInput(call.Arguments, &params); err != nil {
		return invalidArguments(call, fmt.Sprintf("Failed to parse tool input: %s", err.Error()), exampleArgs)
	}

	query := strings.TrimSpace(params.Query)
	if query == "" {
		return invalidArguments(call, "query is required", exampleArgs)
	}

	focus := strings.ToLower(strings.TrimSpace(params.Focus))
	switch focus {
	case "":
		focus = focusPassages
	case focusPassages, focusPlaces:
	default:
		return invalidArguments(call, fmt.Sprintf("focus must be one of passages or places, got %q", params.Focus), exampleArgs)
	}

	chapter, ok := normalizeChapter(params.Chapter)
	if !ok {
		return invalidArguments(call, fmt.Sprintf("chapter must be a roman numeral, got %q", params.Chapter), `{"query":"Venice","chapter":"XXII"}`)
	}

	searchQuery := query
	if focus == focusPlaces {
		searchQuery = fmt.Sprintf("places cities locations Twain visited in %s", query)
	}

	passages, err := t.searcher.Query(ctx, searchQuery, t.topK, domain.PassageFilter{SectionLabel: chapter})
	if err != nil {
		t.logger.Printf("BookSearchTool: search for %q failed: %v", searchQuery, err)
		if errors.Is(err, domain.ErrIndexNotInitialized) {
			return failure(call, "The book index is not available right now, so I can't search 'The Innocents Abroad'. Please try again later.")
		}
		return failure(call, fmt.Sprintf(
			"I encountered an error while searching for information about '%s' in Twain's book. Please try rephrasing your question.",
			query,
		))
	}

	if focus == focusPlaces {
		return domain.ToolResult{CallID: call.ID, Content: formatPlaces(query, passages)}
	}
	return domain.ToolResult{CallID: call.ID, Content: formatPassages(query, passages)}
}

// formatPassages renders passages with a bold chapter citation above each one.
func formatPassages(query string, passages []domain.Passage) string {
	if len(passages) == 0 {
		return fmt.Sprintf(
			"I couldn't find specific information about '%s' in 'The Innocents Abroad'. "+
				"This might be outside the scope of Twain's travel memoir.",
			query,
		)
	}

	var sb strings.Builder
	sb.WriteString("Here's what Mark Twain wrote about that in 'The Innocents Abroad':\n")
	for _, p := range passages {
		ref := "Chapter " + p.SectionLabel
		if p.SectionTitle != "" {
			ref += " - " + p.SectionTitle
		}
		fmt.Fprintf(&sb, "\n**[%s]**\n%s\n", ref, strings.TrimSpace(p.Text))
	}
	return sb.String()
}

// formatPlaces renders a numbered list of passages about a region.
func formatPlaces(region string, passages []domain.Passage) string {
	if len(passages) == 0 {
		return fmt.Sprintf("I couldn't find specific information about places Twain visited in %s.", region)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on 'The Innocents Abroad', here are references to Twain's travels in %s:\n", region)
	for i, p := range passages {
		fmt.Fprintf(&sb, "\n%d. [Chapter %s] %s\n", i+1, p.SectionLabel, strings.TrimSpace(p.Text))
	}
	return sb.String()
}

// normalizeChapter accepts a roman numeral or a chapter number and returns the roman label.
func normalizeChapter(value string) (string, bool) {
	value = strings.ToUpper(strings.TrimSpace(value))
	value = strings.TrimPrefix(value, "CHAPTER ")
	if value == "" {
		return "", true
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 399 {
			return "", false
		}
		return toRoman(n), true
	}
	if !romanNumeral.MatchString(value) {
		return "", false
	}
	return value, true
}

func toRoman(n int) string {
	numerals := []struct {
		value  int
		symbol string
	}{
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var sb strings.Builder
	for _, r := range numerals {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}
