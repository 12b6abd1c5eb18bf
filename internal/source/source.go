// Package source provides the seekable line stream the pager reads from.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source reads lines from a seekable byte stream. The stream cursor is
// shared mutable state owned exclusively by the display loop: consuming
// lines advances it, and callers must Rewind before resolving "line N
// from the top" again. Source is not safe for concurrent use.
type Source struct {
	f     *os.File
	r     *bufio.Reader
	start int64
}

// Open opens path read-only and captures the current stream position as
// the fixed start offset. Every later Rewind returns to this position.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	start, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Source{f: f, r: bufio.NewReader(f), start: start}, nil
}

// Rewind seeks back to the start offset so the next read resolves the
// first line again.
func (s *Source) Rewind() error {
	if _, err := s.f.Seek(s.start, io.SeekStart); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	s.r.Reset(s.f)
	return nil
}

// Next returns the next line with its terminating newline removed.
// It returns io.EOF once the stream is exhausted; a final line without
// a trailing newline is returned normally, with io.EOF on the following
// call.
func (s *Source) Next() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimNewline(line), nil
		}
		return "", err
	}
	return trimNewline(line), nil
}

// Skip consumes and discards up to n lines, reporting how many were
// actually available. Hitting end-of-stream early is not an error.
func (s *Source) Skip(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := s.Next(); err != nil {
			if err == io.EOF {
				return i, nil
			}
			return i, err
		}
	}
	return n, nil
}

// Count rewinds and counts the total number of lines. The cursor is left
// at end-of-stream; Rewind before the next read.
func (s *Source) Count() (int, error) {
	if err := s.Rewind(); err != nil {
		return 0, err
	}

	n := 0
	for {
		_, err := s.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.f.Close()
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
