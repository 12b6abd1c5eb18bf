// Package renderer paints the visible window of a line source onto the
// terminal backend.
//
// Each redraw recomputes the visible window from scratch: the source is
// rewound to its start offset, the scrolled-past lines are skipped, and
// every screen row is cleared and repainted with its centered slice. Rows
// past end-of-file are painted blank so stale content from a previous,
// longer scroll position never survives. Nothing is cached between
// redraws.
package renderer

import (
	"fmt"
	"io"

	"github.com/dshills/midview/internal/renderer/backend"
	"github.com/dshills/midview/internal/renderer/layout"
	"github.com/dshills/midview/internal/renderer/viewport"
)

// LineSource is the restartable line sequence the renderer reads from.
// The renderer rewinds it before every redraw, so scrolling is
// deterministic no matter how much was previously consumed.
type LineSource interface {
	Rewind() error
	Next() (string, error)
}

// Renderer is the redraw controller. It holds explicit handles to its
// two collaborators and is invoked with the current scroll state as a
// plain argument.
type Renderer struct {
	backend backend.Backend
	source  LineSource
}

// New creates a renderer drawing src through b.
func New(b backend.Backend, src LineSource) *Renderer {
	return &Renderer{backend: b, source: src}
}

// Redraw repaints every row of the screen for the given scroll state.
// All cell updates are flushed in one batch after the last row, so a
// partial frame is never visible. Returns a wrapped error if the source
// fails; end-of-file is not an error.
func (r *Renderer) Redraw(vp *viewport.Viewport) error {
	if err := r.source.Rewind(); err != nil {
		return fmt.Errorf("redraw: %w", err)
	}

	width, height := vp.Size()

	eof := false
	for skip := vp.Offset(); skip > 0 && !eof; skip-- {
		if _, err := r.source.Next(); err != nil {
			if err != io.EOF {
				return fmt.Errorf("redraw: %w", err)
			}
			eof = true
		}
	}

	for row := 0; row < height; row++ {
		line := ""
		if !eof {
			next, err := r.source.Next()
			switch {
			case err == io.EOF:
				eof = true
			case err != nil:
				return fmt.Errorf("redraw: %w", err)
			default:
				line = next
			}
		}
		r.paintRow(row, line, width)
	}

	r.backend.Show()
	return nil
}

// paintRow clears one row and writes the centered slice of line into it.
func (r *Renderer) paintRow(row int, line string, width int) {
	r.backend.ClearRow(row)

	placed := layout.Center(line, width)
	col := placed.LeftPad
	for _, cluster := range layout.Clusters(placed.Text) {
		r.backend.SetCluster(col, row, cluster)
		col++
	}
}
