package tinyinput

import "fmt"

// Kind classifies a ReadError.
type Kind int

const (
	// KindIO marks a failure writing the prompt or reading the input line.
	KindIO Kind = iota + 1
	// KindParse marks input text that does not conform to the target type's
	// text format.
	KindParse
)

// String returns a short label for the kind.
func (kind Kind) String() string {
	switch kind {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("kind(%d)", int(kind))
	}
}

// ReadError is the failure result of Read and ReadPassword. Exactly one of
// two cases occurs: an I/O failure carrying the underlying error, or a parse
// failure carrying no further detail.
type ReadError struct {
	Kind Kind
	Err  error // underlying I/O failure; nil when Kind is KindParse
}

// Error implements the error interface.
func (readErr *ReadError) Error() string {
	switch {
	case readErr.Kind == KindIO && readErr.Err != nil:
		return fmt.Sprintf("read input: %v", readErr.Err)
	case readErr.Kind == KindIO:
		return "read input failed"
	default:
		return "parse input failed"
	}
}

// Unwrap exposes the underlying I/O failure to errors.Is and errors.As.
// Parse failures carry no cause, so Unwrap returns nil for them.
func (readErr *ReadError) Unwrap() error {
	return readErr.Err
}
