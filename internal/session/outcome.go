package session

import "fmt"

// OutcomeKind classifies how an operation ended so the caller can decide
// between silence, a passing notification and an error surface.
type OutcomeKind int

const (
	// OK means the operation ran and the canvas or state changed.
	OK OutcomeKind = iota
	// UserNoOp means the request was legitimate but there was nothing to
	// do, such as undoing with an empty history.
	UserNoOp
	// InvalidInput means the request itself was malformed.
	InvalidInput
	// ExternalFailure means the filesystem or another outside system
	// refused; Err carries the cause.
	ExternalFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OK:
		return "ok"
	case UserNoOp:
		return "no-op"
	case InvalidInput:
		return "invalid input"
	case ExternalFailure:
		return "external failure"
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

// Outcome reports the result of a session operation. Message, when set, is
// ready to show the user as-is.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Err     error
}

// Changed reports whether the operation altered the session and a repaint
// is due.
func (o Outcome) Changed() bool {
	return o.Kind == OK
}

func ok(message string) Outcome {
	return Outcome{Kind: OK, Message: message}
}

func okf(format string, args ...any) Outcome {
	return Outcome{Kind: OK, Message: fmt.Sprintf(format, args...)}
}

func noop(message string) Outcome {
	return Outcome{Kind: UserNoOp, Message: message}
}

func invalidf(format string, args ...any) Outcome {
	return Outcome{Kind: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

func failf(err error, format string, args ...any) Outcome {
	return Outcome{Kind: ExternalFailure, Message: fmt.Sprintf(format, args...), Err: err}
}
