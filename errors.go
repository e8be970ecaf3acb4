package blend

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidTarget = errors.New("invalid merge target")
var ErrInvalidSource = errors.New("invalid merge source")

// InvalidTargetError is returned when the target, after defaulting, is neither
// a mapping nor a sequence.
type InvalidTargetError struct {
	Value interface{}
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("%s: %T is not a mapping or sequence", ErrInvalidTarget, e.Value)
}

func (e *InvalidTargetError) Is(target error) bool {
	return target == ErrInvalidTarget
}

// InvalidSourceError is returned when a source cannot be merged into the
// target. Index is the position of the source in the call.
type InvalidSourceError struct {
	Index  int
	Value  interface{}
	Reason string
}

func (e *InvalidSourceError) Error() string {
	return fmt.Sprintf("%s %d (%T): %s", ErrInvalidSource, e.Index, e.Value, e.Reason)
}

func (e *InvalidSourceError) Is(target error) bool {
	return target == ErrInvalidSource
}
