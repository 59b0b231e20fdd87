package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestIntersection verifies overlap, disjoint results and low-end clamping.
func TestIntersection(t *testing.T) {
	type tc struct {
		a, b Rectangle
		want Rectangle
	}

	tests := map[string]tc{
		"overlap": {
			a: New(0, 0, 10, 10), b: New(5, 5, 10, 10), want: New(5, 5, 5, 5),
		},
		"disjoint is negative": {
			a: New(0, 0, 10, 10), b: New(20, 20, 5, 5), want: New(20, 20, -10, -10),
		},
		"touching is zero": {
			a: New(0, 0, 10, 10), b: New(10, 0, 5, 10), want: New(10, 0, 0, 10),
		},
		"contained": {
			a: New(0, 0, 10, 10), b: New(2, 3, 4, 5), want: New(2, 3, 4, 5),
		},
		"far apart clamps at min": {
			a: New(MinValue, MinValue, 1, 1), b: New(MaxValue, MaxValue, 1, 1),
			want: New(MaxValue, MaxValue, MinValue, MinValue),
		},
		"far edges beyond max": {
			a: New(MaxValue-5, 0, 100, 10), b: New(MaxValue-10, 0, 100, 10),
			want: New(MaxValue-5, 0, 95, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.a.Intersection(tt.b)); diff != "" {
				t.Fatalf("unexpected intersection (-want +got):\n%s", diff)
			}
		})
	}
}

// TestUnion verifies enclosing bounds, non-existent operands and high-end clamping.
func TestUnion(t *testing.T) {
	type tc struct {
		a, b Rectangle
		want Rectangle
	}

	tests := map[string]tc{
		"overlap": {
			a: New(0, 0, 10, 10), b: New(5, 5, 10, 10), want: New(0, 0, 15, 15),
		},
		"disjoint": {
			a: New(-5, 0, 1, 1), b: New(5, 5, 2, 2), want: New(-5, 0, 12, 7),
		},
		"receiver non-existent": {
			a: New(-5, -5, -5, -5), b: New(0, 0, 5, 5), want: New(0, 0, 5, 5),
		},
		"argument non-existent": {
			a: New(0, 0, 5, 5), b: New(-1, -1, -1, 3), want: New(0, 0, 5, 5),
		},
		"both non-existent returns argument": {
			a: New(1, 1, -1, 1), b: New(9, 9, 1, -9), want: New(9, 9, 1, -9),
		},
		"zero size still counts": {
			a: New(0, 0, 0, 0), b: New(4, 4, 1, 1), want: New(0, 0, 5, 5),
		},
		"span beyond max clamps": {
			a: New(MinValue, 0, 10, 10), b: New(MaxValue-1, 0, 10, 10),
			want: New(MinValue, 0, MaxValue, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.a.Union(tt.b)); diff != "" {
				t.Fatalf("unexpected union (-want +got):\n%s", diff)
			}
			got := tt.a
			got.AddRect(tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected AddRect (-want +got):\n%s", diff)
			}
		})
	}
}

// TestAdd verifies point absorption, the non-existent collapse and high-end clamping.
func TestAdd(t *testing.T) {
	type tc struct {
		rect Rectangle
		x, y int32
		want Rectangle
	}

	tests := map[string]tc{
		"point inside": {
			rect: New(0, 0, 10, 10), x: 3, y: 3, want: New(0, 0, 10, 10),
		},
		"extends right and up": {
			rect: New(0, 0, 10, 10), x: 20, y: -5, want: New(0, -5, 20, 15),
		},
		"non-existent collapses to point": {
			rect: New(5, 5, -1, 3), x: 1, y: 2, want: New(1, 2, 0, 0),
		},
		"empty but existing grows": {
			rect: New(5, 5, 0, 0), x: 1, y: 2, want: New(1, 2, 4, 3),
		},
		"span beyond max clamps": {
			rect: New(MinValue, 0, 10, 10), x: MaxValue, y: 0, want: New(MinValue, 0, MaxValue, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect
			got.Add(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected Add (-want +got):\n%s", diff)
			}
			got = tt.rect
			got.AddPoint(Point{X: tt.x, Y: tt.y})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected AddPoint (-want +got):\n%s", diff)
			}
		})
	}
}

// TestAdd_PointOnFarEdgeNotContained verifies an added point can land on the open far edge.
func TestAdd_PointOnFarEdgeNotContained(t *testing.T) {
	r := New(0, 0, 10, 10)
	r.Add(20, 5)
	if r.Contains(20, 5) {
		t.Fatalf("expected (20,5) on the right edge of %v to be outside", r)
	}
	if !r.Contains(19, 5) {
		t.Fatalf("expected (19,5) inside %v", r)
	}
}

// TestIncluding_DoesNotMutate verifies the pure form leaves the receiver alone.
func TestIncluding_DoesNotMutate(t *testing.T) {
	r := New(0, 0, 1, 1)
	got := r.Including(5, 5)
	if r != New(0, 0, 1, 1) {
		t.Fatalf("receiver mutated: %v", r)
	}
	if got != New(0, 0, 5, 5) {
		t.Fatalf("expected 0,0 5x5, got %v", got)
	}
}
