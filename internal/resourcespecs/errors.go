// Package resourcespecs parses and validates every watched resource kind
// into a canonical, value-typed Spec, using the same
// k8s.io/apimachinery/pkg/util/validation/field vocabulary the project's
// admission-time validation already uses.
package resourcespecs

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Kind classifies an Error for the purposes of index recovery: whether the
// affected slot should keep its previous value, fall back to default
// policy, or simply surface a status condition.
type Kind int

const (
	// ParseError means the resource could not be projected into a Spec at
	// all; the caller should log a warning and leave the previous value, if
	// any, intact.
	ParseError Kind = iota
	// ReferenceError means a target-ref or auth-ref names a nonexistent or
	// wrong-kind resource; not fatal to the index, surfaced via status.
	ReferenceError
	// ConflictError means two resources could not be disambiguated
	// deterministically without applying the tie-break rule; the loser is
	// reported via status.
	ConflictError
	// WatchError means the underlying input stream failed transiently.
	WatchError
	// InternalError means a programming invariant was violated.
	InternalError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case ReferenceError:
		return "ReferenceError"
	case ConflictError:
		return "ConflictError"
	case WatchError:
		return "WatchError"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Error is the uniform error value returned by every Parse function and by
// index-time reference resolution.
type Error struct {
	Kind      Kind
	Namespace string
	Name      string
	GVK       string
	Errs      field.ErrorList
	Message   string
}

func (e *Error) Error() string {
	if len(e.Errs) > 0 {
		return fmt.Sprintf("%s %s/%s (%s): %s", e.Kind, e.Namespace, e.Name, e.GVK, e.Errs.ToAggregate().Error())
	}
	return fmt.Sprintf("%s %s/%s (%s): %s", e.Kind, e.Namespace, e.Name, e.GVK, e.Message)
}

func newParseError(namespace, name, gvk string, errs field.ErrorList) error {
	if len(errs) == 0 {
		return nil
	}
	return &Error{Kind: ParseError, Namespace: namespace, Name: name, GVK: gvk, Errs: errs}
}

// ReferenceErrorf builds a ReferenceError for a dangling or wrong-kind ref.
func ReferenceErrorf(namespace, name, gvk, format string, args ...any) error {
	return &Error{Kind: ReferenceError, Namespace: namespace, Name: name, GVK: gvk, Message: fmt.Sprintf(format, args...)}
}
