package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/textnav/internal/engine/buffer"
)

// ErrInvalidPosition is returned for malformed --at values.
var ErrInvalidPosition = errors.New("invalid position")

// parsePosition parses a 1-based LINE:COLUMN (or bare LINE) into a point.
func parsePosition(s string) (buffer.Point, error) {
	lineStr, colStr, hasCol := strings.Cut(strings.TrimSpace(s), ":")
	if !hasCol {
		colStr = "1"
	}

	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return buffer.Point{}, fmt.Errorf("%w %q: line must be a positive integer", ErrInvalidPosition, s)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return buffer.Point{}, fmt.Errorf("%w %q: column must be a positive integer", ErrInvalidPosition, s)
	}

	return buffer.Pt(line-1, col-1), nil
}

// formatPosition renders a point as 1-based LINE:COLUMN.
func formatPosition(p buffer.Point) string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}
