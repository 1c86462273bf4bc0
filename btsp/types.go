package btsp

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the solvers.
var (
	// ErrTooFewPoints indicates an instance below the minimum size
	// (three points for a cycle, two for a path).
	ErrTooFewPoints = errors.New("btsp: too few points")

	// ErrEndpointOutOfRange indicates a path endpoint outside [0, n).
	ErrEndpointOutOfRange = errors.New("btsp: path endpoint out of range")

	// ErrSameEndpoints indicates s == t for the path variant.
	ErrSameEndpoints = errors.New("btsp: path endpoints must differ")

	// ErrMalformedCycle is returned by ExtractHamiltonPath when the cycle
	// does not fit the five-fold graph it is supposed to come from.
	ErrMalformedCycle = errors.New("btsp: cycle does not fit the five-fold graph")

	// ErrInvariant is the panic value (wrapped) when the pipeline produces
	// something its construction rules out, e.g. a ratio outside [1, 2].
	ErrInvariant = errors.New("btsp: invariant violated")
)

// ratioTolerance absorbs floating point noise in the guarantee check.
const ratioTolerance = 1e-9

// Options configures the approximation.
//
// Logger receives stage timings at debug level and, with Report, the
// objective, lower bound and guarantee at info level. Validation rechecks
// the guarantee and the square property of the tour and panics with
// ErrInvariant on violation.
type Options struct {
	Logger     logrus.FieldLogger
	Report     bool
	Validation bool
}

// Option represents a functional option for the solvers.
type Option func(*Options)

// WithLogger routes diagnostics to l. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReport toggles the per-solve guarantee report.
func WithReport(on bool) Option {
	return func(o *Options) {
		o.Report = on
	}
}

// WithValidation toggles the postcondition checks.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validation = on
	}
}

// DefaultOptions returns the defaults: a discarding logger, no report,
// validation on.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.Out = io.Discard
	return Options{
		Logger:     discard,
		Report:     false,
		Validation: true,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// invariant panics with an error wrapping ErrInvariant.
func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
}
