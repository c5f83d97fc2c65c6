package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	apiTracer = otel.Tracer("sunday-league/internal/interfaces/httpapi")

	// Non-recording span handed out when a span would add no value.
	noopSpan = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for a handler. Helpers and handlers on
// untraced requests (health probes have no parent span) get the noop span,
// so root spans are never minted below the middleware.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
