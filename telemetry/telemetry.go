// Package telemetry provides hierarchical timing collection for generation
// runs. Collectors travel through context so instrumentation stays
// non-intrusive: when no collector is attached, timers are no-ops.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "generate")
//	defer timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timing data for a run.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks a single operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a nested timer under this one.
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from the context, or a no-op
// collector when none is attached.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// StartTimer starts a timer on the context's collector.
func StartTimer(ctx context.Context, name string) Timer {
	return FromContext(ctx).Start(name)
}

type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer)      {}

type noOpTimer struct{}

func (noOpTimer) End()                    {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
