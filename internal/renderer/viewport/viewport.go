// Package viewport tracks the pager's scroll offset and terminal size.
package viewport

// Viewport holds the scroll position and the current terminal
// dimensions. It is exclusively owned by the event loop and mutated only
// between redraws, so it needs no locking.
type Viewport struct {
	offset int
	width  int
	height int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func New(width, height int) *Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Viewport{width: width, height: height}
}

// Offset returns the number of lines scrolled past the top of the file.
func (v *Viewport) Offset() int {
	return v.offset
}

// Size returns the current terminal dimensions.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Width returns the viewport width in columns.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height in rows.
func (v *Viewport) Height() int {
	return v.height
}

// ScrollDown moves the window n lines toward the end of the file. There
// is no upper bound: scrolling past end-of-file shows blank rows, not an
// error.
func (v *Viewport) ScrollDown(n int) {
	if n > 0 {
		v.offset += n
	}
}

// ScrollUp moves the window n lines toward the top, saturating at 0.
// Scrolling up from the top is a no-op.
func (v *Viewport) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	v.offset -= n
	if v.offset < 0 {
		v.offset = 0
	}
}

// ScrollTo jumps directly to the given offset, clamped at 0.
func (v *Viewport) ScrollTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	v.offset = offset
}

// Resize replaces the dimensions wholesale and reports whether they
// changed. The scroll offset is never adjusted by a resize.
func (v *Viewport) Resize(width, height int) bool {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == v.width && height == v.height {
		return false
	}
	v.width = width
	v.height = height
	return true
}
