package probe

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Category is a ranked error class. A category is assignable to itself and to every ancestor.
type Category struct {
	Name   string
	Parent *Category
}

var (
	// CategoryException is the most general category (kind C).
	CategoryException = &Category{Name: "Exception"}

	// CategoryRuntime is the general runtime category (kind B).
	CategoryRuntime = &Category{Name: "RuntimeException", Parent: CategoryException}

	// CategoryIllegalArgument is the most specific category (kind A).
	CategoryIllegalArgument = &Category{Name: "IllegalArgumentException", Parent: CategoryRuntime}
)

// Is reports whether c is target or a descendant of target.
func (c *Category) Is(target *Category) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == target {
			return true
		}
	}

	return false
}

func (c *Category) String() string {
	return c.Name
}

// ProbeError is the error raised by a probe.
type ProbeError struct {
	Category *Category
	Message  string
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Is makes errors.Is match any error of an ancestor category.
func (e *ProbeError) Is(target error) bool {
	var t *ProbeError
	if !errors.As(target, &t) {
		return false
	}

	return e.Category.Is(t.Category)
}

// Handler catches errors assignable to Category and prints Label.
type Handler struct {
	Category *Category
	Label    string
}

// DefaultHandlers is ordered most specific first.
var DefaultHandlers = []Handler{
	{Category: CategoryIllegalArgument, Label: "IllegalArgumentException"},
	{Category: CategoryRuntime, Label: "RuntimeException"},
	{Category: CategoryException, Label: "Exception"},
}

// DefaultProbeInputs are the inputs the exception demo runs with.
var DefaultProbeInputs = []int{0, 1, 2, 3}

// Outcome records what a single probe invocation did.
type Outcome struct {
	Input   int
	Raised  *ProbeError
	Handled *Handler
}

// Raise returns the error selected by x, or nil when x selects none.
func Raise(x int) error {
	switch x {
	case 0:
		return &ProbeError{Category: CategoryIllegalArgument, Message: "0!"}
	case 1:
		return &ProbeError{Category: CategoryRuntime, Message: "1!"}
	case 2:
		return &ProbeError{Category: CategoryException, Message: "2!"}
	}

	return nil
}

// Dispatch returns the first handler err is assignable to.
func Dispatch(err error, handlers []Handler) (*Handler, bool) {
	var perr *ProbeError
	if !errors.As(err, &perr) {
		return nil, false
	}

	for i := range handlers {
		if perr.Category.Is(handlers[i].Category) {
			return &handlers[i], true
		}
	}

	return nil, false
}

// Exceptions runs the exception-dispatch probes.
type Exceptions struct {
	Handlers []Handler
	Logger   *zap.Logger
}

// NewExceptions returns an [Exceptions] using [DefaultHandlers].
func NewExceptions(logger *zap.Logger) *Exceptions {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Exceptions{
		Handlers: DefaultHandlers,
		Logger:   logger,
	}
}

// RunProbe raises the error selected by x, prints the label of the handler that catches it
// and finally prints x.
//
// The cleanup step is deferred before anything else runs, so it prints x exactly once
// on every exit path, after the handler.
// An error no handler catches is returned once cleanup has run.
func (e *Exceptions) RunProbe(w io.Writer, x int) (outcome Outcome, err error) {
	outcome.Input = x

	defer func() {
		if _, werr := fmt.Fprintln(w, x); werr != nil && err == nil {
			err = fmt.Errorf("cleanup: %w", werr)
		}
	}()

	raised := Raise(x)
	if raised == nil {
		e.Logger.Debug("probe completed normally", zap.Int("input", x))

		return outcome, nil
	}

	errors.As(raised, &outcome.Raised)

	handler, ok := Dispatch(raised, e.Handlers)
	if !ok {
		e.Logger.Debug("probe error not handled", zap.Int("input", x), zap.Error(raised))

		return outcome, raised
	}

	outcome.Handled = handler

	e.Logger.Debug(
		"probe error handled",
		zap.Int("input", x),
		zap.Stringer("raised", outcome.Raised.Category),
		zap.Stringer("handler", handler.Category),
	)

	if _, err := fmt.Fprintln(w, handler.Label); err != nil {
		return outcome, fmt.Errorf("handler %s: %w", handler.Category, err)
	}

	return outcome, nil
}

// RunProbes runs [Exceptions.RunProbe] for every input in order.
func (e *Exceptions) RunProbes(w io.Writer, xs []int) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(xs))

	for _, x := range xs {
		outcome, err := e.RunProbe(w, x)
		outcomes = append(outcomes, outcome)
		if err != nil {
			return outcomes, fmt.Errorf("probe %d: %w", x, err)
		}
	}

	return outcomes, nil
}
