package rectangle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

const (
	// BorderChar is written for the top and bottom rows and the edges of middle rows
	BorderChar = '*'

	// FillChar is written for the interior of middle rows
	FillChar = ' '
)

// ErrInvalidInput is returned when the dimensions cannot be parsed
var ErrInvalidInput = errors.New("invalid input")

// Dimensions is the size of the rectangle outline.
// Zero and negative values are accepted and render degenerately.
type Dimensions struct {
	Width  int
	Height int
}

// ReadDimensions reads two whitespace-separated decimal integers (width, height) from r.
// Base prefixes and digit separators are rejected, so "010" is ten.
// Anything after the second integer is left unread.
func ReadDimensions(r io.Reader) (Dimensions, error) {
	var widthStr, heightStr string
	if _, err := fmt.Fscan(r, &widthStr, &heightStr); err != nil {
		return Dimensions{}, fmt.Errorf("%w: expected width and height: %w", ErrInvalidInput, err)
	}

	width, err := strconv.Atoi(widthStr)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: width: %w", ErrInvalidInput, err)
	}
	height, err := strconv.Atoi(heightStr)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: height: %w", ErrInvalidInput, err)
	}
	return Dimensions{Width: width, Height: height}, nil
}

// LineCount returns the number of rows Print writes for d
func LineCount(d Dimensions) int {
	return max(d.Height-2, 0) + 2
}

// Printer renders rectangle outlines
type Printer struct {
	logger *slog.Logger
}

// NewPrinter creates a new printer
func NewPrinter(logger *slog.Logger) *Printer {
	return &Printer{
		logger: logger,
	}
}

// Print writes the outline of d to w.
//
// The top and bottom border rows are always written, even for a height below 2.
// Middle rows are clamped to the border width, so a width of 1 yields "*" and a
// width of 0 or less yields an empty row.
func (p *Printer) Print(w io.Writer, d Dimensions) error {
	p.logger.Debug("printing rectangle",
		"width", d.Width,
		"height", d.Height,
		"lines", LineCount(d))

	bw := bufio.NewWriter(w)
	writeOutline(bw, d)

	// bufio.Writer keeps the first write error, so checking Flush is enough
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write rectangle: %w", err)
	}
	return nil
}

func writeOutline(w *bufio.Writer, d Dimensions) {
	writeBorderRow(w, d.Width)
	for i := 0; i < d.Height-2; i++ {
		writeMiddleRow(w, d.Width)
	}
	writeBorderRow(w, d.Width)
}

func writeBorderRow(w *bufio.Writer, width int) {
	writeRepeated(w, BorderChar, width)
	_ = w.WriteByte('\n')
}

func writeMiddleRow(w *bufio.Writer, width int) {
	switch {
	case width <= 0:
	case width == 1:
		_ = w.WriteByte(BorderChar)
	default:
		_ = w.WriteByte(BorderChar)
		writeRepeated(w, FillChar, width-2)
		_ = w.WriteByte(BorderChar)
	}
	_ = w.WriteByte('\n')
}

// writeRepeated writes c to w n times. Nothing is written when n <= 0.
func writeRepeated(w *bufio.Writer, c byte, n int) {
	for i := 0; i < n; i++ {
		_ = w.WriteByte(c)
	}
}
