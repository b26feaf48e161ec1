package testutil

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Seq returns the text printed by `seq n`: the numbers 1..n, one per line
func Seq(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines joins lines with newlines and terminates the last one
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// CountingReader wraps a reader and records how much was read from it
type CountingReader struct {
	r     io.Reader
	Reads int
	Bytes int
}

// NewCountingReader wraps s in a CountingReader
func NewCountingReader(s string) *CountingReader {
	return &CountingReader{r: strings.NewReader(s)}
}

// Read implements io.Reader
func (c *CountingReader) Read(p []byte) (int, error) {
	c.Reads++
	n, err := c.r.Read(p)
	c.Bytes += n
	return n, err
}

// Touched reports whether Read was ever called
func (c *CountingReader) Touched() bool {
	return c.Reads > 0
}

// ErrBrokenReader is returned by FailingReader once its data is exhausted
var ErrBrokenReader = errors.New("broken reader")

// FailingReader returns data and then ErrBrokenReader instead of io.EOF
type FailingReader struct {
	r io.Reader
}

// NewFailingReader creates a FailingReader that yields s first
func NewFailingReader(s string) *FailingReader {
	return &FailingReader{r: strings.NewReader(s)}
}

// Read implements io.Reader
func (f *FailingReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, ErrBrokenReader
	}
	return n, err
}
