// Package tinyinput reads one line from standard input, optionally preceded
// by a prompt, and parses it into a caller-specified type. It removes the
// print-prompt, read-line, trim, parse boilerplate from small command-line
// programs:
//
//	count, err := tinyinput.Read[int]("Enter count: ")
//	ratio := tinyinput.ReadOr("Enter ratio: ", 1.0)
//	name, err := tinyinput.Read[string]("Enter name: ")
//
// The package holds no state beyond the shared process streams and performs
// no locking; callers needing concurrent access must serialize calls
// themselves.
package tinyinput

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Read writes prompt verbatim to standard output when it is non-empty, reads
// one line from standard input, trims surrounding whitespace, and parses the
// trimmed text into T. The target type is selected by the call site, either
// through inference from the assignment context or an explicit type argument.
//
// Exactly one line is consumed per call and Read never retries on a parse
// failure; retry policy belongs to the caller. Built-in string, bool, integer,
// and float targets parse with their canonical strconv grammar, and any other
// type must implement encoding.TextUnmarshaler (Read panics for types that do
// neither, since such a call can never succeed).
//
// Failures are reported as *ReadError: KindIO when writing the prompt or
// reading the line fails, KindParse when the trimmed text does not conform to
// T. End of input with zero bytes read parses as the empty string, so
// non-string targets report KindParse rather than a distinct end-of-input
// error.
func Read[T any](prompt string) (T, error) {
	var value T

	if prompt != "" {
		if _, err := io.WriteString(standardOutputWriter, prompt); err != nil {
			return value, &ReadError{Kind: KindIO, Err: err}
		}
	}

	line, err := readLine(standardInputReader)
	if err != nil {
		return value, &ReadError{Kind: KindIO, Err: err}
	}

	if err := parseInto(&value, strings.TrimSpace(line)); err != nil {
		return value, &ReadError{Kind: KindParse}
	}

	return value, nil
}

// ReadOr is Read with default-value substitution: any failure, I/O or parse,
// yields fallback instead of an error.
func ReadOr[T any](prompt string, fallback T) T {
	value, err := Read[T](prompt)
	if err != nil {
		return fallback
	}
	return value
}

// readLine consumes input up to and including the next newline. End of input
// is not an error here: a partial final line is returned as-is and an already
// exhausted stream yields the empty string.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
