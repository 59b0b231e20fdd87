package wininput

import (
	"testing"

	"github.com/frudas24/deskrect/internal/geom"
)

// TestMapAbsolute_Corners verifies the screen corners map onto the absolute range ends.
func TestMapAbsolute_Corners(t *testing.T) {
	screen := geom.New(-1920, 0, 3840, 1080)
	if x, y := mapAbsolute(screen, -1920, 0); x != 0 || y != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", x, y)
	}
	if x, y := mapAbsolute(screen, 1919, 1079); x != absoluteSpan || y != absoluteSpan {
		t.Fatalf("expected (%d,%d), got (%d,%d)", absoluteSpan, absoluteSpan, x, y)
	}
}

// TestMapAbsolute_ClampsOutside verifies points off the desktop land on its edge.
func TestMapAbsolute_ClampsOutside(t *testing.T) {
	screen := geom.New(0, 0, 100, 100)
	if x, y := mapAbsolute(screen, geom.MinValue, geom.MaxValue); x != 0 || y != absoluteSpan {
		t.Fatalf("expected (0,%d), got (%d,%d)", absoluteSpan, x, y)
	}
}

// TestMapAbsolute_DegenerateScreen verifies a collapsed screen does not divide by zero.
func TestMapAbsolute_DegenerateScreen(t *testing.T) {
	if x, y := mapAbsolute(geom.New(0, 0, 0, 0), 1, 1); x != absoluteSpan || y != absoluteSpan {
		t.Fatalf("expected (%d,%d), got (%d,%d)", absoluteSpan, absoluteSpan, x, y)
	}
}
