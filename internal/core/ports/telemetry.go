package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Metrics records counters for the resolution core.
type Metrics interface {
	// CellLoaded counts one constructed cell.
	CellLoaded()
	// RuleTypesBuilt records one registry construction and its outcome.
	RuleTypesBuilt(ok bool, seconds float64)
	// ParserCreated counts one parser request by mode ("single" or "polyglot").
	ParserCreated(mode string)
	// BuildFileParsed records one parsed build file by syntax.
	BuildFileParsed(syntax string, seconds float64)
}
