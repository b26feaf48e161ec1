package executor

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/types"
)

// lineSource turns a reader into a single-use stream of input lines
type lineSource struct {
	reader *bufio.Reader
	lines  int
	used   bool
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{reader: bufio.NewReader(r)}
}

// Stream yields one element per input line. The line terminator ("\n" or
// "\r\n") is removed; a final line without terminator still counts.
func (s *lineSource) Stream() types.Stream {
	return func(yield func(types.Element, error) bool) {
		if s.used {
			yield(types.Element{}, errors.New(errors.ErrInternal, "input stream can only be read once"))
			return
		}
		s.used = true

		for {
			text, err := s.reader.ReadString('\n')
			if text != "" {
				s.lines++
				raw := trimTerminator(text)
				if !yield(types.Element{Line: s.lines, Raw: raw, Value: types.StringValue(raw)}, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(types.Element{}, errors.Wrapf(err, errors.ErrInputRead, "failed to read input line %d", s.lines+1))
				return
			}
		}
	}
}

// Lines returns how many lines have been read so far
func (s *lineSource) Lines() int {
	return s.lines
}

func trimTerminator(text string) string {
	if !strings.HasSuffix(text, "\n") {
		return text
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}
