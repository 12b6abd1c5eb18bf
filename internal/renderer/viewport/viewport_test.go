package viewport

import (
	"testing"
)

func TestNewClampsDimensions(t *testing.T) {
	v := New(0, -3)
	w, h := v.Size()
	if w != 1 || h != 1 {
		t.Errorf("expected 1x1, got %dx%d", w, h)
	}
}

func TestScrollDownIsUnbounded(t *testing.T) {
	v := New(80, 24)

	for i := 0; i < 1000; i++ {
		v.ScrollDown(1)
	}
	if v.Offset() != 1000 {
		t.Errorf("expected offset 1000, got %d", v.Offset())
	}
}

func TestScrollUpFloorsAtZero(t *testing.T) {
	v := New(80, 24)

	for i := 0; i < 5; i++ {
		v.ScrollUp(1)
	}
	if v.Offset() != 0 {
		t.Errorf("repeated scroll up from top should stay at 0, got %d", v.Offset())
	}

	v.ScrollDown(3)
	v.ScrollUp(10)
	if v.Offset() != 0 {
		t.Errorf("expected saturation at 0, got %d", v.Offset())
	}
}

func TestScrollStep(t *testing.T) {
	v := New(80, 24)

	v.ScrollDown(5)
	v.ScrollUp(2)
	if v.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", v.Offset())
	}
}

func TestScrollIgnoresNonPositiveSteps(t *testing.T) {
	v := New(80, 24)
	v.ScrollDown(4)

	v.ScrollDown(0)
	v.ScrollDown(-2)
	v.ScrollUp(0)
	v.ScrollUp(-2)
	if v.Offset() != 4 {
		t.Errorf("expected offset unchanged at 4, got %d", v.Offset())
	}
}

func TestScrollTo(t *testing.T) {
	v := New(80, 24)

	v.ScrollTo(42)
	if v.Offset() != 42 {
		t.Errorf("expected offset 42, got %d", v.Offset())
	}

	v.ScrollTo(-1)
	if v.Offset() != 0 {
		t.Errorf("expected negative target clamped to 0, got %d", v.Offset())
	}
}

func TestResize(t *testing.T) {
	v := New(80, 24)

	if !v.Resize(100, 40) {
		t.Error("expected size change to be reported")
	}
	w, h := v.Size()
	if w != 100 || h != 40 {
		t.Errorf("expected 100x40, got %dx%d", w, h)
	}

	if v.Resize(100, 40) {
		t.Error("unchanged size should not be reported as a change")
	}
}

func TestResizePreservesOffset(t *testing.T) {
	v := New(80, 24)
	v.ScrollDown(7)

	v.Resize(10, 4)
	if v.Offset() != 7 {
		t.Errorf("resize must not touch the offset, got %d", v.Offset())
	}
}

func TestResizeClampsDimensions(t *testing.T) {
	v := New(80, 24)

	v.Resize(0, 0)
	w, h := v.Size()
	if w != 1 || h != 1 {
		t.Errorf("expected clamp to 1x1, got %dx%d", w, h)
	}
}
