package winlock

import (
	"errors"
	"testing"

	"github.com/frudas24/deskrect/internal/geom"
)

// TestPassthrough_RunsAction verifies the action runs and its error is returned.
func TestPassthrough_RunsAction(t *testing.T) {
	want := errors.New("boom")
	calls := 0
	err := Passthrough{}.Run(geom.Point{X: 1, Y: 2}, func() error {
		calls++
		return want
	})
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
