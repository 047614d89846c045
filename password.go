package tinyinput

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal interaction is stubbed in tests, which run without a controlling
// terminal.
var (
	isTerminalForPasswordRead = isTerminal
	readPasswordFromTerminal  = readPassword
)

// ReadPassword writes prompt verbatim to standard output when it is
// non-empty, then reads a secret from standard input. When standard input is
// a terminal the secret is read without echo; otherwise one ordinary line is
// read, so piped input keeps working. The result is trimmed of surrounding
// whitespace. All failures are reported as *ReadError with KindIO.
func ReadPassword(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(standardOutputWriter, prompt); err != nil {
			return "", &ReadError{Kind: KindIO, Err: err}
		}
	}

	if isTerminalForPasswordRead(os.Stdin) {
		secretBytes, err := readPasswordFromTerminal(os.Stdin)
		if err != nil {
			return "", &ReadError{Kind: KindIO, Err: err}
		}
		// The suppressed echo swallowed the user's newline; emit one so
		// following output starts on a fresh line.
		if _, err := io.WriteString(standardOutputWriter, "\n"); err != nil {
			return "", &ReadError{Kind: KindIO, Err: err}
		}
		return strings.TrimSpace(string(secretBytes)), nil
	}

	line, err := readLine(standardInputReader)
	if err != nil {
		return "", &ReadError{Kind: KindIO, Err: err}
	}
	return strings.TrimSpace(line), nil
}

func terminalFD(file *os.File) (int, bool) {
	if file == nil {
		return 0, false
	}
	maxIntValue := int(^uint(0) >> 1)
	fileDescriptor := file.Fd()
	if fileDescriptor > uintptr(maxIntValue) {
		return 0, false
	}
	return int(fileDescriptor), true // #nosec G115 -- os.File descriptors fit into int on supported platforms
}

func isTerminal(file *os.File) bool {
	fileDescriptor, ok := terminalFD(file)
	return ok && term.IsTerminal(fileDescriptor)
}

func readPassword(file *os.File) ([]byte, error) {
	fileDescriptor, ok := terminalFD(file)
	if !ok {
		return nil, errors.New("invalid terminal file descriptor")
	}
	return term.ReadPassword(fileDescriptor)
}
