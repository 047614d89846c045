package tinyinput

import (
	"bufio"
	"io"
	"os"
)

// The process streams are reachable only through these seams so tests can
// substitute in-memory readers and writers. The input reader is shared across
// calls: buffered bytes past the consumed newline stay available for the next
// call instead of being dropped with a throwaway reader. Read assumes
// exclusive, sequential access by a single caller and performs no locking.
var (
	standardInputReader            = bufio.NewReader(os.Stdin)
	standardOutputWriter io.Writer = os.Stdout
)
