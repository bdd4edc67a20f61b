package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNotNumber = errors.New("please enter a whole number")

// lineReader reads prompt answers one line at a time.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// line returns the next line without its terminator. A final line with no
// newline is returned as is; io.EOF only comes back once nothing is left.
func (lr *lineReader) line() (string, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// integer returns the next non-blank line parsed as an integer.
func (lr *lineReader) integer() (int, error) {
	for {
		s, err := lr.line()
		if err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errNotNumber, s)
		}
		return n, nil
	}
}
