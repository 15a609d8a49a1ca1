package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "marketplace-api"
)

// GetTracer returns the tracer for the marketplace service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartConversationSpan starts a new span for a conversation operation.
func StartConversationSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "conversation."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	return ctx, span
}

// StartMessageSpan starts a new span for a message operation.
func StartMessageSpan(ctx context.Context, operation, conversationID string) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "message."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("conversation.id", conversationID),
		),
	)
	return ctx, span
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
