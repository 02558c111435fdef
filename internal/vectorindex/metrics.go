package vectorindex

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("vectorindex")
	IndexBuilds        metric.Int64Counter
	IndexBuildDuration metric.Float64Histogram
	EmbeddingTokens    metric.Int64Counter
)

func init() {
	var err error
	IndexBuilds, err = meter.Int64Counter(
		"book_index_builds_total",
		metric.WithDescription("Total passage index builds by outcome"),
	)
	if err != nil {
		panic(err)
	}

	IndexBuildDuration, err = meter.Float64Histogram(
		"book_index_build_duration_seconds",
		metric.WithDescription("Passage index build duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingTokens, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

func recordIndexBuild(ctx context.Context, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	IndexBuilds.Add(ctx, 1, attrs)
	IndexBuildDuration.Record(ctx, elapsed.Seconds(), attrs)
}

func recordEmbeddingTokens(ctx context.Context, totalTokens int) {
	EmbeddingTokens.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}
