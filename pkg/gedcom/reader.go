// Package gedcom reads the GEDCOM line format into a record tree.
// It covers reading only; gedgraph never writes GEDCOM.
package gedcom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedRecord is returned when a line cannot be parsed or its level
// does not nest under the preceding structure.
var ErrMalformedRecord = errors.New("malformed gedcom record")

// Line is one parsed GEDCOM line: "LEVEL [@XREF@] TAG [VALUE]".
type Line struct {
	Level int
	XRef  string
	Tag   string
	Value string
}

// Record is a line with its nested sub-records.
type Record struct {
	Line
	Subs []*Record
}

// Sub returns the first direct sub-record with the given tag, or nil.
func (r *Record) Sub(tag string) *Record {
	for _, s := range r.Subs {
		if s.Tag == tag {
			return s
		}
	}
	return nil
}

// SubValue returns the value of the first direct sub-record with the given
// tag, or "" when absent.
func (r *Record) SubValue(tag string) string {
	if s := r.Sub(tag); s != nil {
		return s.Value
	}
	return ""
}

// SubsWithTag returns every direct sub-record with the given tag.
func (r *Record) SubsWithTag(tag string) []*Record {
	var out []*Record
	for _, s := range r.Subs {
		if s.Tag == tag {
			out = append(out, s)
		}
	}
	return out
}

// ParseLine parses a single GEDCOM line. Blank lines return (nil, nil).
func ParseLine(raw string) (*Line, error) {
	text := strings.TrimRight(raw, "\r\n")
	text = strings.TrimLeft(text, " \t")
	if text == "" {
		return nil, nil
	}

	parts := strings.SplitN(text, " ", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, raw)
	}

	level, err := strconv.Atoi(parts[0])
	if err != nil || level < 0 {
		return nil, fmt.Errorf("%w: bad level in %q", ErrMalformedRecord, raw)
	}

	line := &Line{Level: level}
	rest := parts[1:]

	if strings.HasPrefix(rest[0], "@") && strings.HasSuffix(rest[0], "@") {
		line.XRef = strings.Trim(rest[0], "@")
		if len(rest) < 2 || rest[1] == "" {
			return nil, fmt.Errorf("%w: xref without tag in %q", ErrMalformedRecord, raw)
		}
		rest = strings.SplitN(rest[1], " ", 2)
	}

	line.Tag = rest[0]
	if len(rest) > 1 {
		line.Value = rest[1]
	}
	if line.Tag == "" {
		return nil, fmt.Errorf("%w: missing tag in %q", ErrMalformedRecord, raw)
	}
	return line, nil
}

// Read parses a GEDCOM stream into its top-level records. Levels must
// increase by at most one between a record and its sub-record; anything else
// fails with ErrMalformedRecord.
func Read(r io.Reader) ([]*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var roots []*Record
	var stack []*Record
	first := true

	for scanner.Scan() {
		raw := scanner.Text()
		if first {
			raw = strings.TrimPrefix(raw, "\ufeff")
			first = false
		}

		line, err := ParseLine(raw)
		if err != nil {
			return nil, err
		}
		if line == nil {
			continue
		}

		rec := &Record{Line: *line}
		if line.Level == 0 {
			roots = append(roots, rec)
			stack = stack[:0]
			stack = append(stack, rec)
			continue
		}

		if line.Level > len(stack) {
			return nil, fmt.Errorf("%w: level %d after depth %d", ErrMalformedRecord, line.Level, len(stack)-1)
		}
		stack = stack[:line.Level]
		parent := stack[len(stack)-1]
		parent.Subs = append(parent.Subs, rec)
		stack = append(stack, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading gedcom stream: %w", err)
	}
	return roots, nil
}

// ReadFile parses a GEDCOM file from disk.
func ReadFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}
