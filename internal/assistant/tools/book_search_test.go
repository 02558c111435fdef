package tools

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookSearchTool(t *testing.T) {
	passages := []domain.Passage{
		{ChunkID: 410, Text: " The Sphinx is grand in its loneliness. ", SectionLabel: "LVIII", SectionTitle: "The Sphinx", Score: 0.88},
		{ChunkID: 402, Text: "We saw the Pyramids from afar.", SectionLabel: "LVIII", Score: 0.71},
	}

	tests := map[string]struct {
		setupMocks   func(*usecases.MockSearchPassages)
		call         domain.ToolCall
		validateResp func(t *testing.T, resp domain.ToolResult)
	}{
		"passages-with-citations": {
			setupMocks: func(s *usecases.MockSearchPassages) {
				s.EXPECT().
					Query(mock.Anything, "Sphinx", 3, domain.PassageFilter{}).
					Return(passages, nil).
					Once()
			},
			call: domain.ToolCall{ID: "call-1", Name: BookSearchToolName, Arguments: `{"query":"Sphinx"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.False(t, resp.IsError)
				assert.Equal(t, "call-1", resp.CallID)
				assert.Equal(t,
					"Here's what Mark Twain wrote about that in 'The Innocents Abroad':\n"+
						"\n**[Chapter LVIII - The Sphinx]**\nThe Sphinx is grand in its loneliness.\n"+
						"\n**[Chapter LVIII]**\nWe saw the Pyramids from afar.\n",
					resp.Content,
				)
			},
		},
		"places-focus": {
			setupMocks: func(s *usecases.MockSearchPassages) {
				s.EXPECT().
					Query(mock.Anything, "places cities locations Twain visited in Egypt", 3, domain.PassageFilter{}).
					Return(passages[:1], nil).
					Once()
			},
			call: domain.ToolCall{ID: "call-2", Arguments: `{"query":"Egypt","focus":"places"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.False(t, resp.IsError)
				assert.Equal(t,
					"Based on 'The Innocents Abroad', here are references to Twain's travels in Egypt:\n"+
						"\n1. [Chapter LVIII] The Sphinx is grand in its loneliness.\n",
					resp.Content,
				)
			},
		},
		"chapter-number-filter": {
			setupMocks: func(s *usecases.MockSearchPassages) {
				s.EXPECT().
					Query(mock.Anything, "Venice", 3, domain.PassageFilter{SectionLabel: "XXII"}).
					Return(nil, nil).
					Once()
			},
			call: domain.ToolCall{ID: "call-3", Arguments: `{"query":"Venice","chapter":"22"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.False(t, resp.IsError)
				assert.Contains(t, resp.Content, "I couldn't find specific information about 'Venice'")
			},
		},
		"places-no-results": {
			setupMocks: func(s *usecases.MockSearchPassages) {
				s.EXPECT().
					Query(mock.Anything, "places cities locations Twain visited in Peru", 3, domain.PassageFilter{SectionLabel: "IX"}).
					Return([]domain.Passage{}, nil).
					Once()
			},
			call: domain.ToolCall{ID: "call-4", Arguments: `{"query":"Peru","focus":"PLACES","chapter":"ix"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.False(t, resp.IsError)
				assert.Equal(t, "I couldn't find specific information about places Twain visited in Peru.", resp.Content)
			},
		},
		"missing-query": {
			setupMocks: func(s *usecases.MockSearchPassages) {},
			call:       domain.ToolCall{ID: "call-5", Arguments: `{"chapter":"I"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.True(t, resp.IsError)
				assert.Contains(t, resp.Content, `"error":"invalid_arguments"`)
				assert.Contains(t, resp.Content, "query is required")
			},
		},
		"unknown-field": {
			setupMocks: func(s *usecases.MockSearchPassages) {},
			call:       domain.ToolCall{ID: "call-6", Arguments: `{"query":"Rome","page":2}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.True(t, resp.IsError)
				assert.Contains(t, resp.Content, "invalid_arguments")
			},
		},
		"trailing-json": {
			setupMocks: func(s *usecases.MockSearchPassages) {},
			call:       domain.ToolCall{ID: "call-7", Arguments: `{"query":"Rome"}{"query":"Paris"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.True(t, resp.IsError)
				assert.Contains(t, resp.Content, "single JSON object")
			},
		},
		"invalid-focus": {
			setupMocks: func(s *usecases.MockSearchPassages) {},
			call:       domain.ToolCall{ID: "call-8", Arguments: `{"query":"Rome","focus":"people"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.True(t, resp.IsError)
				assert.Contains(t, resp.Content, "focus must be one of passages or places")
			},
		},
		"invalid-chapter": {
			setupMocks: func(s *usecases.MockSearchPassages) {},
			call:       domain.ToolCall{ID: "call-9", Arguments: `{"query":"Rome","chapter":"twelve"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.True(t, resp.IsError)
				assert.Contains(t, resp.Content, "chapter must be a roman numeral")
			},
		},
		"index-not-initialized": {
			setupMocks: func(s *usecases.MockSearchPassages) {
				s.EXPECT().
					Query(mock.Anything, "Rome", 3, domain.PassageFilter{}).
					Return(nil, domain.ErrIndexNotInitialized).
					Once()
			},
			call: domain.ToolCall{ID: "call-10", Arguments: `{"query":"Rome"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.True(t, resp.IsError)
				assert.Contains(t, resp.Content, "book index is not available")
			},
		},
		"search-error": {
			setupMocks: func(s *usecases.MockSearchPassages) {
				s.EXPECT().
					Query(mock.Anything, "Rome", 3, domain.PassageFilter{}).
					Return(nil, errors.New("embedding failure")).
					Once()
			},
			call: domain.ToolCall{ID: "call-11", Arguments: `{"query":"Rome"}`},
			validateResp: func(t *testing.T, resp domain.ToolResult) {
				assert.True(t, resp.IsError)
				assert.Equal(t, "call-11", resp.CallID)
				assert.Equal(t,
					"I encountered an error while searching for information about 'Rome' in Twain's book. Please try rephrasing your question.",
					resp.Content,
				)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			searcher := usecases.NewMockSearchPassages(t)
			tt.setupMocks(searcher)

			tool := NewBookSearchTool(searcher, 3, log.New(io.Discard, "", 0))
			resp := tool.Invoke(context.Background(), tt.call)
			tt.validateResp(t, resp)
		})
	}
}

func TestBookSearchTool_Definition(t *testing.T) {
	tool := NewBookSearchTool(nil, 3, log.New(io.Discard, "", 0))
	def := tool.Definition()

	assert.Equal(t, "search_twain_book", def.Name)
	assert.Equal(t, []string{"query"}, def.Input.RequiredFields())
	assert.Equal(t, []string{"passages", "places"}, def.Input.Fields["focus"].Enum)
	assert.NotEmpty(t, tool.StatusMessage())
}

func TestNormalizeChapter(t *testing.T) {
	tests := map[string]struct {
		value    string
		expected string
		ok       bool
	}{
		"empty":          {value: " ", expected: "", ok: true},
		"roman":          {value: "xlii", expected: "XLII", ok: true},
		"number":         {value: "49", expected: "XLIX", ok: true},
		"chapter-prefix": {value: "Chapter 4", expected: "IV", ok: true},
		"zero":           {value: "0", ok: false},
		"words":          {value: "one", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := normalizeChapter(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
