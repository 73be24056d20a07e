package driver

import (
	"tally/internal/observ"
)

// DefaultMaxDiagnostics caps how many diagnostics one pipeline run collects.
const DefaultMaxDiagnostics = 16

// Options configures one pipeline invocation. The zero value is usable.
type Options struct {
	// MaxDiagnostics caps the diagnostic bag; 0 means DefaultMaxDiagnostics.
	MaxDiagnostics int
	// MaxDepth limits expression nesting; 0 means parser.DefaultMaxDepth.
	MaxDepth uint
	// Timer, when non-nil, records per-stage durations.
	Timer *observ.Timer
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics == 0 {
		o.MaxDiagnostics = DefaultMaxDiagnostics
	}
	return o
}
