// SPDX-License-Identifier: MIT

// Package matrix - text codec for Square.
//
// Purpose:
//   - Parse a pre-positioned, line-oriented numeric stream into a Square (FromText).
//   - Render a Square as right-aligned fixed-width columns (String/WriteTo/Format).
//
// Wire format (both directions):
//   - Exactly n rows of n integers; one row per line, newline-terminated.
//   - Parsing accepts commas and/or whitespace between values in any mix:
//     "1,2,3", "1 2 3" and "1, 2 ,3" are the same row.
//   - A sign right after a digit starts a new value, so "1-2" reads as 1, -2.
//   - No header or footer; the caller knows n and positions the stream.
//
// Round-trip:
//   - FromText(strings.NewReader(m.String()), m.Size()) reproduces m.
//     This holds for any padding >= 1: positive values stay apart, and a
//     negative value that touches its neighbour is split on its sign.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const (
	opFromText = "FromText"
	opFormat   = "Format"
)

// isSeparator reports whether r splits two values on a row.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// splitRow cuts a line into value tokens. Separators end a token; a '+' or
// '-' directly after a digit ends the token and starts the next one.
func splitRow(line string) []string {
	var fields []string
	start := -1
	var prev rune
	for i, r := range line {
		switch {
		case isSeparator(r):
			if start >= 0 {
				fields = append(fields, line[start:i])
				start = -1
			}
		case (r == '-' || r == '+') && start >= 0 && prev >= '0' && prev <= '9':
			fields = append(fields, line[start:i])
			start = i
		case start < 0:
			start = i
		}
		prev = r
	}
	if start >= 0 {
		fields = append(fields, line[start:])
	}

	return fields
}

// FromText reads exactly size rows of size integers from src.
// MAIN DESCRIPTION:
//   - Line-oriented parser; the stream must already be positioned at the first row.
//
// Implementation:
//   - Stage 1: validate size; reuse src when it is a *bufio.Reader, so the
//     caller's position after the last consumed row is exact. Any other
//     reader is wrapped and may be read ahead.
//   - Stage 2: read line by line, split with splitRow, parse with strconv.Atoi.
//   - Stage 3: stop after size rows; trailing data stays unread in the reader.
//
// Behavior highlights:
//   - Blank lines are skipped unless WithKeepBlankLines is given.
//   - A row with fewer or more than size values is rejected.
//
// Errors:
//   - ErrInvalidSize (size <= 0).
//   - ErrMalformedInput (nil source, too few rows, wrong value count, non-integer token),
//     annotated with the 1-based line number relative to the start of the read.
//   - Underlying read errors other than io.EOF are wrapped and returned as-is.
//
// Complexity:
//   - Time O(n²) plus input length, Space O(n²).
func FromText(src io.Reader, size int, opts ...Option) (*Square, error) {
	if err := ValidateSize(size); err != nil {
		return nil, matrixErrorf(opFromText, err)
	}
	if src == nil {
		return nil, matrixErrorf(opFromText, fmt.Errorf("nil source: %w", ErrMalformedInput))
	}
	o := gatherOptions(opts...)

	br, ok := src.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(src)
	}

	m := newSquare(size)
	row, lineNo := 0, 0
	for row < size {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, matrixErrorf(opFromText, fmt.Errorf("read line %d: %w", lineNo+1, err))
		}
		if err != nil && line == "" {
			return nil, matrixErrorf(opFromText,
				fmt.Errorf("got %d of %d rows: %w", row, size, ErrMalformedInput))
		}
		lineNo++

		fields := splitRow(line)
		if len(fields) == 0 && o.skipBlankLines {
			continue
		}
		if len(fields) != size {
			return nil, matrixErrorf(opFromText,
				fmt.Errorf("line %d: %d values, want %d: %w", lineNo, len(fields), size, ErrMalformedInput))
		}
		base := row * size
		for j, tok := range fields {
			v, perr := strconv.Atoi(tok)
			if perr != nil {
				return nil, matrixErrorf(opFromText,
					fmt.Errorf("line %d: value %q: %w", lineNo, tok, ErrMalformedInput))
			}
			m.data[base+j] = v
		}
		row++
	}

	return m, nil
}

// render writes rows of right-aligned fields of width
// len(decimal(max |a_ij|)) + padding.
func (m *Square) render(b *strings.Builder, padding int) {
	width := len(strconv.FormatUint(uint64(m.maxMagnitude()), 10)) + padding
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(b, "%*d", width, m.data[base+j])
		}
		b.WriteByte('\n')
	}
}

// String renders the matrix with DefaultPadding.
// The max magnitude is recomputed on every call, so columns stay aligned
// after mutation.
// Complexity: O(n²).
func (m *Square) String() string {
	var b strings.Builder
	m.render(&b, DefaultPadding)

	return b.String()
}

// WriteTo writes String() to w, implementing io.WriterTo.
func (m *Square) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}

// Format writes the rendering to w using the given options (WithPadding).
//
// Errors: ErrNilMatrix, or the write error from w.
func (m *Square) Format(w io.Writer, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFormat, err)
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	m.render(&b, o.padding)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return matrixErrorf(opFormat, err)
	}

	return nil
}
