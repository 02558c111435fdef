package domain

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// AssistantEventType represents the type of event emitted during an orchestration run.
type AssistantEventType string

const (
	AssistantEventType_TurnStarted       AssistantEventType = "turn_started"
	AssistantEventType_ToolCallStarted   AssistantEventType = "tool_call_started"
	AssistantEventType_ToolCallCompleted AssistantEventType = "tool_call_completed"
	AssistantEventType_TurnCompleted     AssistantEventType = "turn_completed"
)

// AssistantUsage contains token usage for one or more model invocations.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add returns the sum of both usages.
func (u AssistantUsage) Add(other AssistantUsage) AssistantUsage {
	return AssistantUsage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// AssistantTurnStarted contains metadata for a new assistant turn.
type AssistantTurnStarted struct {
	ConversationID      uuid.UUID `json:"conversation_id"`
	ConversationCreated bool      `json:"conversation_created"`
}

// AssistantToolCallStarted is emitted before a tool is invoked.
type AssistantToolCallStarted struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Arguments     string `json:"arguments"`
	StatusMessage string `json:"status_message"`
}

// AssistantToolCallCompleted is emitted after a tool returned its result.
type AssistantToolCallCompleted struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsError bool   `json:"is_error"`
}

// AssistantTurnCompleted contains the final answer and usage of one turn.
type AssistantTurnCompleted struct {
	Content     string         `json:"content"`
	Iterations  int            `json:"iterations"`
	Usage       AssistantUsage `json:"usage"`
	CompletedAt string         `json:"completed_at"`
}

// AssistantEventCallback is called for each assistant turn event.
type AssistantEventCallback func(eventType AssistantEventType, data any) error

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolResult is the outcome of one tool call. IsError results are still fed back
// to the model so it can recover.
type ToolResult struct {
	CallID  string
	Content string
	IsError bool
}

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role       ChatRole
	Content    string
	ToolCallID *string
	ToolCalls  []ToolCall
}

// NewToolResultMessage wraps a tool result as a tool-role message.
func NewToolResultMessage(result ToolResult) AssistantMessage {
	callID := result.CallID
	return AssistantMessage{
		Role:       ChatRole_Tool,
		Content:    result.Content,
		ToolCallID: &callID,
	}
}

// HasToolCalls reports whether the message requests at least one tool call.
func (m AssistantMessage) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// ToolDefinition describes one tool that can be used by the assistant.
type ToolDefinition struct {
	Name        string
	Description string
	Input       ToolInput
	Hints       ToolHints
}

// ComposeHint composes the tool hints into a single string for prompting.
func (d ToolDefinition) ComposeHint() string {
	parts := make([]string, 0, 3)
	if useWhen := strings.TrimSpace(d.Hints.UseWhen); useWhen != "" {
		parts = append(parts, "Use: "+useWhen)
	}
	if avoidWhen := strings.TrimSpace(d.Hints.AvoidWhen); avoidWhen != "" {
		parts = append(parts, "Avoid: "+avoidWhen)
	}
	if argRules := strings.TrimSpace(d.Hints.ArgRules); argRules != "" {
		parts = append(parts, "Args: "+argRules)
	}

	if len(parts) == 0 {
		return "Follow the tool schema and description."
	}
	return strings.Join(parts, " ")
}

// ToolHints holds compact guidance appended to the tool description.
type ToolHints struct {
	UseWhen   string
	AvoidWhen string
	ArgRules  string
}

// ToolField represents one tool input field.
type ToolField struct {
	Type        string
	Description string
	Required    bool
	Enum        []string
}

// ToolInput describes the tool input shape.
type ToolInput struct {
	Type   string
	Fields map[string]ToolField
}

// RequiredFields returns the names of required fields in a stable order.
func (in ToolInput) RequiredFields() []string {
	required := make([]string, 0, len(in.Fields))
	for name, field := range in.Fields {
		if field.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)
	return required
}

// AssistantTurnRequest is the domain request for one model invocation.
type AssistantTurnRequest struct {
	Model    string
	Messages []AssistantMessage
	// Optional generation settings.
	Temperature    *float64
	MaxTokens      *int
	AvailableTools []ToolDefinition
}

// AssistantTurnResponse contains the model reply: either final content or tool calls.
type AssistantTurnResponse struct {
	Content   string
	ToolCalls []ToolCall
	Usage     AssistantUsage
}

// Assistant defines the chat model capability in domain terms.
type Assistant interface {
	// RunTurnSync executes one model invocation and returns its reply.
	RunTurnSync(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}

// Tool represents one capability the assistant can call.
type Tool interface {
	Definition() ToolDefinition
	StatusMessage() string
	Invoke(ctx context.Context, call ToolCall) ToolResult
}

// ToolRegistry resolves and invokes tools by name.
type ToolRegistry interface {
	Invoke(ctx context.Context, call ToolCall) ToolResult
	StatusMessage(toolName string) string
	List() []ToolDefinition
}
