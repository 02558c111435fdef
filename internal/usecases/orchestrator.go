package usecases

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/common"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"
)

const (
	// FallbackAnswer is returned when a run fails on the model side or hits its iteration limit.
	FallbackAnswer = "I apologize, but I encountered an error while processing your request. Please try again."
	// EmptyAnswer is returned when the model finishes without any content.
	EmptyAnswer = "I'm sorry, I couldn't generate a response. Please try again."

	// Keep tool calling deterministic to reduce malformed arguments.
	CHAT_TEMPERATURE = 0.2
)

//go:embed prompts/travel_advisor.yml
var travelAdvisorPrompt embed.FS

// runState is the state of the orchestration state machine.
type runState int

const (
	stateReasoning runState = iota
	stateToolDispatch
	stateTerminal
)

func (s runState) String() string {
	switch s {
	case stateReasoning:
		return "reasoning"
	case stateToolDispatch:
		return "tool_dispatch"
	default:
		return "terminal"
	}
}

// orchestrationRun holds the mutable state of one run. messages only contains the
// messages produced during this run, starting with the user query.
type orchestrationRun struct {
	messages       []domain.AssistantMessage
	iterationCount int
	limit          int
	pending        []domain.ToolCall
	usage          domain.AssistantUsage
	answer         string
	outcome        string
}

func newOrchestrationRun(query string, limit int) *orchestrationRun {
	return &orchestrationRun{
		messages: []domain.AssistantMessage{
			{Role: domain.ChatRole_User, Content: query},
		},
		limit: limit,
	}
}

// finish moves the run to its terminal outcome.
func (r *orchestrationRun) finish(outcome, answer string) runState {
	r.outcome = outcome
	r.answer = answer
	r.pending = nil
	return stateTerminal
}

// OrchestrationResult is the outcome of one orchestration run.
type OrchestrationResult struct {
	Answer     string
	Iterations int
	Usage      domain.AssistantUsage
	Outcome    string
}

// Orchestrator defines the interface for the agent orchestrator
type Orchestrator interface {
	// Run answers query given the prior conversation turns. Model failures and the
	// iteration limit produce FallbackAnswer instead of an error; the only errors
	// are invalid input, cancellation and event callback failures.
	Run(ctx context.Context, prior []domain.AssistantMessage, query string, onEvent domain.AssistantEventCallback) (OrchestrationResult, error)
}

// OrchestratorImpl alternates between a Reasoning step (one model invocation) and a
// ToolDispatch step (all tool calls requested by that invocation) until the model
// answers without tool calls or the iteration limit is reached.
type OrchestratorImpl struct {
	assistant        domain.Assistant
	registry         domain.ToolRegistry
	timeProvider     domain.CurrentTimeProvider
	logger           *log.Logger
	systemPrompt     []domain.AssistantMessage
	model            string
	limit            int
	maxParallelTools int
}

// NewOrchestratorImpl creates a new instance of OrchestratorImpl
func NewOrchestratorImpl(
	assistant domain.Assistant,
	registry domain.ToolRegistry,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	systemPrompt []domain.AssistantMessage,
	model string,
	limit int,
	maxParallelTools int,
) OrchestratorImpl {
	return OrchestratorImpl{
		assistant:        assistant,
		registry:         registry,
		timeProvider:     timeProvider,
		logger:           logger,
		systemPrompt:     systemPrompt,
		model:            model,
		limit:            limit,
		maxParallelTools: maxParallelTools,
	}
}

// Run executes the Reasoning/ToolDispatch loop for one query.
func (o OrchestratorImpl) Run(ctx context.Context, prior []domain.AssistantMessage, query string, onEvent domain.AssistantEventCallback) (OrchestrationResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", o.model),
		attribute.Int("prior_messages", len(prior)),
		attribute.Int("limit", o.limit),
	))
	defer span.End()

	if strings.TrimSpace(query) == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return OrchestrationResult{}, err
	}
	if onEvent == nil {
		onEvent = func(domain.AssistantEventType, any) error { return nil }
	}

	run := newOrchestrationRun(query, o.limit)
	system := o.buildSystemPrompt()

	state := stateReasoning
	for state != stateTerminal {
		if err := spanCtx.Err(); err != nil {
			return o.abort(spanCtx, span, run, OutcomeCancelled, err)
		}

		span.AddEvent(state.String(), trace.WithAttributes(
			attribute.Int("iteration", run.iterationCount),
		))

		var err error
		switch state {
		case stateReasoning:
			state, err = o.reason(spanCtx, run, system, prior)
		case stateToolDispatch:
			state, err = o.dispatch(spanCtx, run, onEvent)
		}
		if err != nil {
			if ctxErr := spanCtx.Err(); ctxErr != nil {
				return o.abort(spanCtx, span, run, OutcomeCancelled, ctxErr)
			}
			// the event consumer went away
			return o.abort(spanCtx, span, run, OutcomeCancelled, err)
		}
	}

	if run.outcome == OutcomeRecursionLimit {
		telemetry.RecordErrorAndStatus(span, domain.ErrRecursionLimitExceeded)
	}

	RecordLLMTokensUsed(spanCtx, run.usage.PromptTokens, run.usage.CompletionTokens)
	RecordOrchestrationRun(spanCtx, run.outcome, run.iterationCount)
	span.SetAttributes(
		attribute.String("outcome", run.outcome),
		attribute.Int("iterations", run.iterationCount),
	)

	return OrchestrationResult{
		Answer:     run.answer,
		Iterations: run.iterationCount,
		Usage:      run.usage,
		Outcome:    run.outcome,
	}, nil
}

// reason invokes the model once. A failed invocation ends the run with the fallback answer.
func (o OrchestratorImpl) reason(ctx context.Context, run *orchestrationRun, system, prior []domain.AssistantMessage) (runState, error) {
	messages := make([]domain.AssistantMessage, 0, len(system)+len(prior)+len(run.messages))
	messages = append(messages, system...)
	messages = append(messages, prior...)
	messages = append(messages, run.messages...)

	resp, err := o.assistant.RunTurnSync(ctx, domain.AssistantTurnRequest{
		Model:          o.model,
		Messages:       messages,
		Temperature:    common.Ptr(CHAT_TEMPERATURE),
		AvailableTools: o.registry.List(),
	})
	if err != nil {
		if ctx.Err() != nil {
			return stateReasoning, ctx.Err()
		}
		o.logger.Printf("Orchestrator: model invocation failed at iteration %d: %v", run.iterationCount, err)
		return run.finish(OutcomeFallback, FallbackAnswer), nil
	}
	run.usage = run.usage.Add(resp.Usage)

	if len(resp.ToolCalls) == 0 {
		answer := strings.TrimSpace(resp.Content)
		if answer == "" {
			answer = EmptyAnswer
		}
		return run.finish(OutcomeAnswered, answer), nil
	}

	run.messages = append(run.messages, domain.AssistantMessage{
		Role:      domain.ChatRole_Assistant,
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
	})
	run.pending = resp.ToolCalls
	return stateToolDispatch, nil
}

// dispatch invokes every pending tool call. Calls run concurrently but their results
// are appended in request order.
func (o OrchestratorImpl) dispatch(ctx context.Context, run *orchestrationRun, onEvent domain.AssistantEventCallback) (runState, error) {
	calls := run.pending
	for _, call := range calls {
		if err := onEvent(domain.AssistantEventType_ToolCallStarted, domain.AssistantToolCallStarted{
			ID:            call.ID,
			Name:          call.Name,
			Arguments:     call.Arguments,
			StatusMessage: o.registry.StatusMessage(call.Name),
		}); err != nil {
			return stateToolDispatch, err
		}
	}

	results := make([]domain.ToolResult, len(calls))
	var g errgroup.Group
	if o.maxParallelTools > 0 {
		g.SetLimit(o.maxParallelTools)
	}
	for i, call := range calls {
		g.Go(func() error {
			results[i] = o.registry.Invoke(ctx, call)
			return nil
		})
	}
	_ = g.Wait()

	// results of cancelled calls must not reach the model
	if err := ctx.Err(); err != nil {
		return stateToolDispatch, err
	}

	for i, call := range calls {
		result := results[i]
		result.CallID = call.ID
		run.messages = append(run.messages, domain.NewToolResultMessage(result))
		if err := onEvent(domain.AssistantEventType_ToolCallCompleted, domain.AssistantToolCallCompleted{
			ID:      call.ID,
			Name:    call.Name,
			IsError: result.IsError,
		}); err != nil {
			return stateToolDispatch, err
		}
	}
	run.pending = nil
	run.iterationCount++

	if run.iterationCount >= run.limit {
		o.logger.Printf("Orchestrator: %v after %d iterations", domain.ErrRecursionLimitExceeded, run.iterationCount)
		return run.finish(OutcomeRecursionLimit, FallbackAnswer), nil
	}
	return stateReasoning, nil
}

// abort ends a run without an answer.
func (o OrchestratorImpl) abort(ctx context.Context, span trace.Span, run *orchestrationRun, outcome string, err error) (OrchestrationResult, error) {
	telemetry.RecordErrorAndStatus(span, err)
	RecordLLMTokensUsed(ctx, run.usage.PromptTokens, run.usage.CompletionTokens)
	RecordOrchestrationRun(ctx, outcome, run.iterationCount)
	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return OrchestrationResult{}, fmt.Errorf("orchestration aborted: %w", err)
	}
	return OrchestrationResult{}, err
}

// buildSystemPrompt fills the current date into the system messages.
func (o OrchestratorImpl) buildSystemPrompt() []domain.AssistantMessage {
	messages := make([]domain.AssistantMessage, len(o.systemPrompt))
	copy(messages, o.systemPrompt)
	for i, msg := range messages {
		if msg.Role == domain.ChatRole_System && strings.Contains(msg.Content, "%s") {
			messages[i].Content = fmt.Sprintf(msg.Content, o.timeProvider.Now().Format(time.DateOnly))
		}
	}
	return messages
}

// LoadSystemPrompt decodes the embedded travel advisor prompt.
func LoadSystemPrompt() ([]domain.AssistantMessage, error) {
	file, err := travelAdvisorPrompt.Open("prompts/travel_advisor.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open travel advisor prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.AssistantMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode travel advisor prompt: %w", err)
	}
	return messages, nil
}

// InitOrchestrator is the initializer for the Orchestrator
type InitOrchestrator struct {
	Assistant    domain.Assistant           `resolve:""`
	ToolRegistry domain.ToolRegistry        `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	Model        string                     `config:"LLM_MODEL"`
	// Maximum number of tool dispatch iterations of a single run
	RecursionLimit   int `config:"AGENT_RECURSION_LIMIT" default:"10"`
	MaxParallelTools int `config:"AGENT_MAX_PARALLEL_TOOLS" default:"4"`
}

// Initialize registers the Orchestrator in the dependency container
func (i InitOrchestrator) Initialize(ctx context.Context) (context.Context, error) {
	if i.RecursionLimit < 1 {
		return ctx, fmt.Errorf("AGENT_RECURSION_LIMIT must be at least 1, got %d", i.RecursionLimit)
	}
	systemPrompt, err := LoadSystemPrompt()
	if err != nil {
		return ctx, err
	}
	depend.Register[Orchestrator](NewOrchestratorImpl(
		i.Assistant,
		i.ToolRegistry,
		i.TimeProvider,
		i.Logger,
		systemPrompt,
		i.Model,
		i.RecursionLimit,
		i.MaxParallelTools,
	))
	return ctx, nil
}
