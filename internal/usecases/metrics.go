package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Orchestration run outcomes.
const (
	OutcomeAnswered       = "answered"
	OutcomeFallback       = "fallback"
	OutcomeRecursionLimit = "recursion_limit"
	OutcomeCancelled      = "cancelled"
)

var (
	meter             = otel.Meter("usecases")
	LLMTokensUsed     metric.Int64Counter
	OrchestrationRuns metric.Int64Counter
	RunIterations     metric.Int64Histogram
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	OrchestrationRuns, err = meter.Int64Counter(
		"orchestration_runs_total",
		metric.WithDescription("Total orchestration runs by outcome"),
	)
	if err != nil {
		panic(err)
	}

	RunIterations, err = meter.Int64Histogram(
		"orchestration_run_iterations",
		metric.WithDescription("Tool dispatch iterations per orchestration run"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordOrchestrationRun records the outcome and iteration count of one run.
func RecordOrchestrationRun(ctx context.Context, outcome string, iterations int) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	OrchestrationRuns.Add(ctx, 1, attrs)
	RunIterations.Record(ctx, int64(iterations), attrs)
}
