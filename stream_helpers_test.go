package tinyinput

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// swapStreams points the package seams at an in-memory input and a capture
// buffer, restoring the process streams when the test finishes. Tests that
// call it must not run in parallel with each other.
func swapStreams(t *testing.T, input string) *bytes.Buffer {
	t.Helper()

	originalInput := standardInputReader
	originalOutput := standardOutputWriter

	outputBuffer := &bytes.Buffer{}
	standardInputReader = bufio.NewReader(strings.NewReader(input))
	standardOutputWriter = outputBuffer

	t.Cleanup(func() {
		standardInputReader = originalInput
		standardOutputWriter = originalOutput
	})

	return outputBuffer
}

// swapInputReader installs an arbitrary reader as standard input, keeping the
// capture buffer behavior of swapStreams for output.
func swapInputReader(t *testing.T, reader io.Reader) *bytes.Buffer {
	t.Helper()

	outputBuffer := swapStreams(t, "")
	standardInputReader = bufio.NewReader(reader)
	return outputBuffer
}

// swapOutputWriter installs an arbitrary writer as standard output.
func swapOutputWriter(t *testing.T, writer io.Writer) {
	t.Helper()

	originalOutput := standardOutputWriter
	standardOutputWriter = writer
	t.Cleanup(func() {
		standardOutputWriter = originalOutput
	})
}

// stubPasswordTerminalHooks replaces terminal detection and the no-echo read
// for the duration of a test.
func stubPasswordTerminalHooks(
	t *testing.T,
	isTerminalStub func(*os.File) bool,
	readPasswordStub func(*os.File) ([]byte, error),
) {
	t.Helper()

	originalIsTerminal := isTerminalForPasswordRead
	originalReadPassword := readPasswordFromTerminal
	isTerminalForPasswordRead = isTerminalStub
	readPasswordFromTerminal = readPasswordStub

	t.Cleanup(func() {
		isTerminalForPasswordRead = originalIsTerminal
		readPasswordFromTerminal = originalReadPassword
	})
}

// failingReader errors on every read, simulating a closed or broken input
// stream.
type failingReader struct {
	err error
}

func (reader failingReader) Read([]byte) (int, error) {
	return 0, reader.err
}

// failingWriter rejects every write, simulating an unwritable output stream.
type failingWriter struct {
	err error
}

func (writer failingWriter) Write([]byte) (int, error) {
	return 0, writer.err
}
