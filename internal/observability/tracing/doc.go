// Package tracing wires OpenTelemetry into the service: a tracer provider
// installed at startup, server spans for every HTTP request and a helper for
// child spans in the listing use case.
//
//	shutdown := tracing.Init(1.0)
//	defer func() { _ = shutdown(context.Background()) }()
//
//	ctx, span := tracing.Tracer().Start(ctx, "listing.Page")
//	defer span.End()
package tracing
