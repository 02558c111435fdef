package assistant

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("assistant")
	ToolInvocations metric.Int64Counter
)

func init() {
	var err error
	ToolInvocations, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total tool invocations by tool and error flag"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolInvocation counts one tool invocation.
func RecordToolInvocation(ctx context.Context, kind ToolKind, isError bool) {
	ToolInvocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", kind.String()),
		attribute.Bool("is_error", isError),
	))
}
