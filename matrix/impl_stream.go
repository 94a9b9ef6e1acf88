// SPDX-License-Identifier: MIT

// Package matrix - plain-text stream codec.
//
// Format (ASCII, whitespace-delimited):
//   - Write: one line per row, every element followed by a single space, then
//     '\n'. No header: dimensions are not emitted.
//   - Read: height, then width, then height*width elements in row-major order.
//     Line breaks carry no meaning.
//
// Write output is not self-describing: prefix "height width" to read it back.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	ctxWriteTo  = "WriteTo"
	ctxReadFrom = "ReadFrom"
)

// Compile-time assertions for the io interfaces.
var (
	_ io.WriterTo   = (*Matrix[float64])(nil)
	_ io.ReaderFrom = (*Matrix[float64])(nil)
)

// countingWriter tracks bytes that reached the destination writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// WriteTo writes m in the row-per-line text format. The returned count is
// the number of bytes accepted by w, also on a short write.
// Errors: ErrNilMatrix for a nil receiver, or the writer's error.
// Complexity: O(w*h).
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("Matrix.%s: %w", ctxWriteTo, ErrNilMatrix)
	}
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	var x, y int
	for y = 0; y < m.height; y++ {
		for x = 0; x < m.width; x++ {
			if _, err := fmt.Fprint(bw, m.at(x, y), " "); err != nil {
				return cw.n, fmt.Errorf("Matrix.%s: %w", ctxWriteTo, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return cw.n, fmt.Errorf("Matrix.%s: %w", ctxWriteTo, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("Matrix.%s: %w", ctxWriteTo, err)
	}

	return cw.n, nil
}

// Encode writes m to w in the row-per-line text format.
func Encode[T Number](w io.Writer, m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	_, err := m.WriteTo(w)

	return err
}

// ReadFrom reads "height width v..." from r and overwrites m in place,
// resizing it to the declared shape. On error m is left unchanged.
// The element limit is DefaultMaxElements; use Decode to change it.
//
// The returned count is the number of bytes scanned, not counting the
// delimiter pushed back after the last element. Reading stops right after
// that element, so several matrices can be read from one stream by calling
// ReadFrom repeatedly (see Decode for the exact rule).
//
// Errors: ErrNilMatrix for a nil receiver, otherwise as Decode.
func (m *Matrix[T]) ReadFrom(r io.Reader) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("Matrix.%s: %w", ctxReadFrom, ErrNilMatrix)
	}
	o := gatherOptions()
	rc := newRuneCounter(r)
	dec, err := decode[T](rc, &o)
	if err != nil {
		return rc.n, fmt.Errorf("Matrix.%s: %w", ctxReadFrom, err)
	}
	*m = *dec.Move()

	return rc.n, nil
}

// runeCounter is the io.RuneScanner the decoder scans through. When r is
// already an io.RuneScanner (strings.Reader, bufio.Reader, ...) it is used
// directly and the rune fmt reads past a token is pushed back into it.
// Otherwise r is read one byte at a time, and only that one delimiter rune
// is consumed past the last token.
type runeCounter struct {
	rs io.RuneScanner
	r  io.Reader

	buf        [utf8.UTFMax]byte
	last       rune
	size       int
	pending    bool // last must be replayed by the next ReadRune
	unreadable bool
	n          int64
}

func newRuneCounter(r io.Reader) *runeCounter {
	rs, _ := r.(io.RuneScanner)

	return &runeCounter{rs: rs, r: r}
}

// ReadRune implements io.RuneReader.
func (c *runeCounter) ReadRune() (rune, int, error) {
	var (
		ch   rune
		size int
		err  error
	)
	switch {
	case c.rs != nil:
		ch, size, err = c.rs.ReadRune()
	case c.pending:
		ch, size = c.last, c.size
		c.pending = false
	default:
		ch, size, err = c.readUTF8()
	}
	if err != nil {
		c.unreadable = false

		return ch, size, err
	}
	c.last, c.size, c.unreadable = ch, size, true
	c.n += int64(size)

	return ch, size, nil
}

// UnreadRune implements io.RuneScanner.
func (c *runeCounter) UnreadRune() error {
	if !c.unreadable {
		return bufio.ErrInvalidUnreadRune
	}
	if c.rs != nil {
		if err := c.rs.UnreadRune(); err != nil {
			return err
		}
	} else {
		c.pending = true
	}
	c.unreadable = false
	c.n -= int64(c.size)

	return nil
}

// Read implements io.Reader one rune at a time; fmt never calls it on a
// RuneScanner.
func (c *runeCounter) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) < utf8.UTFMax {
		return 0, io.ErrShortBuffer
	}
	ch, _, err := c.ReadRune()
	if err != nil {
		return 0, err
	}

	return utf8.EncodeRune(p, ch), nil
}

// readUTF8 reads one UTF-8 sequence from r byte by byte. The size returned
// is the number of bytes consumed, even for an invalid sequence.
func (c *runeCounter) readUTF8() (rune, int, error) {
	if _, err := io.ReadFull(c.r, c.buf[:1]); err != nil {
		return 0, 0, err
	}
	if c.buf[0] < utf8.RuneSelf {
		return rune(c.buf[0]), 1, nil
	}
	n := 1
	for n < utf8.UTFMax && !utf8.FullRune(c.buf[:n]) {
		if _, err := io.ReadFull(c.r, c.buf[n:n+1]); err != nil {
			break
		}
		n++
	}
	ch, _ := utf8.DecodeRune(c.buf[:n])

	return ch, n, nil
}

// Decode reads one matrix in the "height width v..." format from r.
// MAIN DESCRIPTION:
//   - Tokens are separated by any whitespace; newlines carry no meaning.
//   - Elements are parsed into T with fmt's scanning rules.
//   - Nothing after the last element is consumed when r is an
//     io.RuneScanner. Other readers are read byte by byte and lose at most
//     the single delimiter byte that ends the last element; wrap files and
//     sockets in a bufio.Reader once and pass that to every call.
//
// Options:
//   - WithMaxElements(n): reject shapes with height*width > n.
//
// Errors:
//   - ErrInvalidDimensions: negative height or width.
//   - ErrTooLarge: height*width above the limit.
//   - ErrMalformedInput: missing or unparsable token (wraps the scan error).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func Decode[T Number](r io.Reader, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)

	return decode[T](newRuneCounter(r), &o)
}

func decode[T Number](r *runeCounter, o *Options) (*Matrix[T], error) {
	var height, width int
	if _, err := fmt.Fscan(r, &height, &width); err != nil {
		return nil, malformed("header", err)
	}
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("Decode(%d,%d): %w", height, width, ErrInvalidDimensions)
	}
	if width != 0 && height > o.maxElements/width {
		return nil, fmt.Errorf("Decode(%d,%d): limit %d: %w", height, width, o.maxElements, ErrTooLarge)
	}

	m := newMatrix[T](width, height)
	if width == 0 || height == 0 {
		return m, nil
	}
	var (
		x, y int
		v    T
	)
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			if _, err := fmt.Fscan(r, &v); err != nil {
				return nil, malformed(fmt.Sprintf("element (%d,%d)", x, y), err)
			}
			m.storeAt(x, y, v)
		}
	}

	return m, nil
}

// malformed wraps a scan failure as ErrMalformedInput, turning a bare EOF
// into io.ErrUnexpectedEOF since the input ended inside a matrix.
func malformed(what string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return fmt.Errorf("Decode: %s: %w: %w", what, ErrMalformedInput, err)
}
