package reflow

import "github.com/zhtext/reflow/segment"

// Options holds configuration for paragraph reflow.
type Options struct {
	// Separator width
	compact bool

	// Empty-line / cross-page-gap heuristic
	pageHeaders bool

	// Sentence-boundary leniency
	level segment.BoundaryLevel

	// Optional per-line cancellation hook
	cancelHook func(linesProcessed int) bool
}

// defaultOptions returns the default reflow options.
func defaultOptions() Options {
	return Options{
		compact:     false,
		pageHeaders: false,
		level:       segment.LevelLenient,
		cancelHook:  nil,
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{
		compact:     o.compact,
		pageHeaders: o.pageHeaders,
		level:       o.level,
		cancelHook:  o.cancelHook,
	}
}
