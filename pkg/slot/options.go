package slot

import (
	"log/slog"

	"github.com/vango-dev/slot/internal/errors"
)

// Reason explains why a composition rendered nothing.
type Reason uint8

const (
	ReasonNone       Reason = iota // Composed successfully
	ReasonMissing                  // No child, or a nil child
	ReasonMultiple                 // More than one child, or a list of children
	ReasonFragment                 // A fragment child
	ReasonNotElement               // Text, raw HTML, or a component that does not render an element
)

// String returns the label used in logs and metrics.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMissing:
		return "missing"
	case ReasonMultiple:
		return "multiple"
	case ReasonFragment:
		return "fragment"
	case ReasonNotElement:
		return "not_element"
	default:
		return "unknown"
	}
}

// Code returns the diagnostic code for r, or "" for ReasonNone.
func (r Reason) Code() string {
	switch r {
	case ReasonMissing:
		return errors.CodeChildMissing
	case ReasonMultiple:
		return errors.CodeChildMultiple
	case ReasonFragment:
		return errors.CodeChildFragment
	case ReasonNotElement:
		return errors.CodeChildNotElement
	default:
		return ""
	}
}

// Outcome describes one composition pass.
type Outcome struct {
	// Reason is ReasonNone when the child was composed.
	Reason Reason

	// Tag is the composed element's tag, empty on rejection.
	Tag string

	// Attrs is the number of attributes on the composed element.
	Attrs int
}

// OK reports whether the pass produced an element.
func (o Outcome) OK() bool { return o.Reason == ReasonNone }

// Observer is notified after every composition pass.
type Observer interface {
	ObserveComposition(Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Outcome)

// ObserveComposition implements Observer.
func (f ObserverFunc) ObserveComposition(o Outcome) { f(o) }

// Option configures a Composer.
type Option func(*Composer)

// WithDevMode enables development diagnostics. When enabled, a rejected
// child is reported as a warning on the logger; otherwise rejections are
// silent.
func WithDevMode(enabled bool) Option {
	return func(c *Composer) {
		c.devMode = enabled
	}
}

// WithLogger sets the logger used for development diagnostics.
// Default: slog.Default() at the time of logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}

// WithObserver sets an observer notified of every pass, in any mode.
func WithObserver(o Observer) Option {
	return func(c *Composer) {
		c.observer = o
	}
}
