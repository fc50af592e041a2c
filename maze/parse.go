package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a maze description from r.
//
// With WithDimensions(rows, cols) exactly rows×cols symbols are consumed,
// every whitespace byte is skipped and data after the last cell is ignored.
// Without it, each non-blank line is one row.
//
// Every failure wraps ErrLoad.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	o := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, o.err)
	}

	var (
		g   *Grid
		err error
	)
	if o.Rows > 0 {
		g, err = parseFixed(bufio.NewReader(r), o.Rows, o.Cols)
	} else {
		g, err = parseLines(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return g, nil
}

// ParseString is Parse over an in-memory description.
func ParseString(s string, opts ...Option) (*Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Load opens path and parses it with Parse.
func Load(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// maxPrealloc bounds the up-front allocation of a fixed-size read.
const maxPrealloc = 1 << 16

// parseFixed fills a rows×cols grid symbol by symbol.
func parseFixed(br *bufio.Reader, rows, cols int) (*Grid, error) {
	total := rows * cols
	// The input may hold far fewer cells than claimed; grow as they arrive.
	cells := make([]CellKind, 0, min(total, maxPrealloc))
	for len(cells) < total {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: got %d of %d cells", ErrTruncated, len(cells), total)
		}
		if err != nil {
			return nil, err
		}
		if isSpace(b) {
			continue
		}
		k, ok := KindOf(b)
		if !ok {
			n := len(cells)
			return nil, fmt.Errorf("%w %q at row %d, col %d", ErrInvalidSymbol, b, n/cols, n%cols)
		}
		cells = append(cells, k)
	}

	return newGrid(rows, cols, cells)
}

// parseLines treats every non-blank line as a row.
func parseLines(r io.Reader) (*Grid, error) {
	var (
		cells      []CellKind
		rows, cols int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Bytes()
		width := 0
		for _, b := range line {
			if isSpace(b) {
				continue
			}
			k, ok := KindOf(b)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, col %d", ErrInvalidSymbol, b, rows, width)
			}
			cells = append(cells, k)
			width++
		}
		if width == 0 {
			continue // blank line
		}
		if rows == 0 {
			cols = width
		} else if width != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, rows, width, cols)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrEmptyGrid
	}

	return newGrid(rows, cols, cells)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
