package assistant

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/assistant/tools"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultStatusMessage = "⏳ Processing request..."

// ToolKind is the closed set of tools the assistant can call.
type ToolKind int

const (
	ToolKind_BookSearch ToolKind = iota + 1
	ToolKind_Weather
)

// String returns the kind name used in logs and metrics.
func (k ToolKind) String() string {
	switch k {
	case ToolKind_BookSearch:
		return "book_search"
	case ToolKind_Weather:
		return "weather"
	default:
		return "unknown"
	}
}

// ToolRegistry dispatches tool calls through a static table keyed by ToolKind.
type ToolRegistry struct {
	tools  map[ToolKind]domain.Tool
	kinds  map[string]ToolKind
	logger *log.Logger
}

// NewToolRegistry creates a tool registry holding one tool per kind.
func NewToolRegistry(logger *log.Logger, bookSearch, weather domain.Tool) ToolRegistry {
	table := map[ToolKind]domain.Tool{
		ToolKind_BookSearch: bookSearch,
		ToolKind_Weather:    weather,
	}
	kinds := make(map[string]ToolKind, len(table))
	for kind, tool := range table {
		kinds[tool.Definition().Name] = kind
	}

	return ToolRegistry{
		tools:  table,
		kinds:  kinds,
		logger: logger,
	}
}

// Kind resolves a tool name to its kind.
func (r ToolRegistry) Kind(name string) (ToolKind, bool) {
	kind, ok := r.kinds[name]
	return kind, ok
}

// Invoke runs the tool named by the call. It never panics: unknown tools, tool
// failures and recovered panics all come back as IsError results.
func (r ToolRegistry) Invoke(ctx context.Context, call domain.ToolCall) domain.ToolResult {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool", call.Name),
		attribute.String("call_id", call.ID),
	))
	defer span.End()

	kind, ok := r.Kind(call.Name)
	if !ok {
		result := domain.ToolResult{
			CallID:  call.ID,
			Content: fmt.Sprintf(`{"error":"unknown_tool","details":"Tool '%s' is not registered."}`, call.Name),
			IsError: true,
		}
		telemetry.RecordErrorAndStatus(span, fmt.Errorf("%w: unknown tool %q", domain.ErrToolInvocation, call.Name))
		RecordToolInvocation(spanCtx, ToolKind(0), result.IsError)
		return result
	}

	result := r.invokeSafely(spanCtx, kind, call)
	result.CallID = call.ID
	if result.IsError {
		telemetry.RecordErrorAndStatus(span, fmt.Errorf("%w: %s", domain.ErrToolInvocation, call.Name))
	} else {
		telemetry.RecordErrorAndStatus(span, nil)
	}
	RecordToolInvocation(spanCtx, kind, result.IsError)
	return result
}

func (r ToolRegistry) invokeSafely(ctx context.Context, kind ToolKind, call domain.ToolCall) (result domain.ToolResult) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Printf("ToolRegistry: tool %s panicked: %v", call.Name, p)
			result = domain.ToolResult{
				CallID:  call.ID,
				Content: fmt.Sprintf("The %s tool failed unexpectedly. Please try again or answer without it.", call.Name),
				IsError: true,
			}
		}
	}()
	return r.tools[kind].Invoke(ctx, call)
}

// StatusMessage returns a status message about the tool execution.
func (r ToolRegistry) StatusMessage(toolName string) string {
	if kind, ok := r.Kind(toolName); ok {
		if msg := r.tools[kind].StatusMessage(); msg != "" {
			return msg
		}
	}
	return defaultStatusMessage
}

// List returns all tool definitions sorted by name.
func (r ToolRegistry) List() []domain.ToolDefinition {
	res := make([]domain.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		res = append(res, tool.Definition())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// InitToolRegistry builds the tools and registers the domain.ToolRegistry.
type InitToolRegistry struct {
	SearchPassages  usecases.SearchPassages `resolve:""`
	WeatherProvider domain.WeatherProvider  `resolve:""`
	Logger          *log.Logger             `resolve:""`
	TopK            int                     `config:"RETRIEVAL_TOP_K" default:"3"`
}

// Initialize registers the tool registry in the dependency container.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	if i.TopK < 1 {
		return ctx, fmt.Errorf("RETRIEVAL_TOP_K must be at least 1, got %d", i.TopK)
	}

	registry := NewToolRegistry(
		i.Logger,
		tools.NewBookSearchTool(i.SearchPassages, i.TopK, i.Logger),
		tools.NewWeatherTool(i.WeatherProvider, i.Logger),
	)
	depend.Register[domain.ToolRegistry](registry)
	return ctx, nil
}
