package control

import (
	"testing"
	"time"

	"github.com/frudas24/deskrect/internal/geom"
	"github.com/google/go-cmp/cmp"
)

var testScroll = geom.New(110, 110, 50, 50)

// TestDragScroll_StartsOnlyInsideScroll verifies drag begins inside the scroll area.
func TestDragScroll_StartsOnlyInsideScroll(t *testing.T) {
	g := NewGestureState()

	actions := g.HandleDown(true, 1, geom.Point{X: 120, Y: 120}, testScroll)
	want := []Action{{Type: ActMove, X: 120, Y: 120}, {Type: ActLeftDown, X: 120, Y: 120}}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Fatalf("unexpected actions (-want +got):\n%s", diff)
	}
	if !g.Dragging() {
		t.Fatalf("expected drag to be active")
	}

	actions = g.HandleDown(true, 2, geom.Point{X: 160, Y: 120}, testScroll)
	if len(actions) != 1 || actions[0].Type != ActClick {
		t.Fatalf("expected click on the scroll edge, got %#v", actions)
	}
	if g.Dragging() {
		t.Fatalf("expected drag to stop after a click")
	}
}

// TestDragScroll_MoveOnlyWhenActiveAndSamePointer verifies drag move logic.
func TestDragScroll_MoveOnlyWhenActiveAndSamePointer(t *testing.T) {
	g := NewGestureState()
	now := time.Unix(0, 0)
	g.SetNowFunc(func() time.Time { return now })

	g.HandleDown(true, 1, geom.Point{X: 120, Y: 120}, testScroll)

	now = now.Add(20 * time.Millisecond)
	if actions := g.HandleMove(true, 2, geom.Point{X: 130, Y: 130}); len(actions) != 0 {
		t.Fatalf("expected no actions for different pointer, got %#v", actions)
	}

	actions := g.HandleMove(true, 1, geom.Point{X: 130, Y: 130})
	if len(actions) != 1 || actions[0].Type != ActMove || actions[0].X != 130 {
		t.Fatalf("expected move, got %#v", actions)
	}
}

// TestDragScroll_MoveThrottled verifies fast or tiny moves are dropped.
func TestDragScroll_MoveThrottled(t *testing.T) {
	g := NewGestureState()
	now := time.Unix(0, 0)
	g.SetNowFunc(func() time.Time { return now })

	g.HandleDown(true, 1, geom.Point{X: 120, Y: 120}, testScroll)

	now = now.Add(5 * time.Millisecond)
	if actions := g.HandleMove(true, 1, geom.Point{X: 140, Y: 140}); len(actions) != 0 {
		t.Fatalf("expected throttled move, got %#v", actions)
	}

	now = now.Add(20 * time.Millisecond)
	if actions := g.HandleMove(true, 1, geom.Point{X: 121, Y: 121}); len(actions) != 0 {
		t.Fatalf("expected tiny move to be dropped, got %#v", actions)
	}
}

// TestDragScroll_UpStopsAndEmitsLeftUp verifies drag termination.
func TestDragScroll_UpStopsAndEmitsLeftUp(t *testing.T) {
	g := NewGestureState()

	g.HandleDown(true, 1, geom.Point{X: 120, Y: 120}, testScroll)
	actions := g.HandleUp(true, 1, geom.Point{X: 120, Y: 120})
	if len(actions) != 1 || actions[0].Type != ActLeftUp {
		t.Fatalf("expected left_up, got %#v", actions)
	}
	if actions := g.HandleUp(true, 1, geom.Point{X: 120, Y: 120}); len(actions) != 0 {
		t.Fatalf("expected no second left_up, got %#v", actions)
	}
}

// TestDragScroll_ResetReleasesButton verifies Reset lifts the button at the last drag point once.
func TestDragScroll_ResetReleasesButton(t *testing.T) {
	g := NewGestureState()
	if actions := g.Reset(); actions != nil {
		t.Fatalf("expected no actions without a drag, got %#v", actions)
	}

	g.HandleDown(true, 1, geom.Point{X: 120, Y: 120}, testScroll)
	want := []Action{{Type: ActLeftUp, X: 120, Y: 120}}
	if diff := cmp.Diff(want, g.Reset()); diff != "" {
		t.Fatalf("unexpected actions (-want +got):\n%s", diff)
	}
	if g.Dragging() {
		t.Fatalf("expected drag to be cleared")
	}
	if actions := g.Reset(); actions != nil {
		t.Fatalf("expected a second reset to do nothing, got %#v", actions)
	}
}

// TestGestures_InputDisabled verifies nothing is emitted while input is off.
func TestGestures_InputDisabled(t *testing.T) {
	g := NewGestureState()
	if actions := g.HandleDown(false, 1, geom.Point{X: 120, Y: 120}, testScroll); actions != nil {
		t.Fatalf("expected no actions, got %#v", actions)
	}
	if actions := ActionsForType(false, "hola", geom.New(0, 0, 10, 10)); actions != nil {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

// TestChatActions verifies chat helpers click the chat center before editing.
func TestChatActions(t *testing.T) {
	chat := geom.New(10, 20, 100, 40)

	want := []Action{{Type: ActClick, X: 60, Y: 40}, {Type: ActType, Text: "hola"}}
	if diff := cmp.Diff(want, ActionsForType(true, "hola", chat)); diff != "" {
		t.Fatalf("unexpected type actions (-want +got):\n%s", diff)
	}

	want = []Action{{Type: ActClick, X: 60, Y: 40}, {Type: ActEnter}}
	if diff := cmp.Diff(want, ActionsForEnter(true, chat)); diff != "" {
		t.Fatalf("unexpected enter actions (-want +got):\n%s", diff)
	}

	want = []Action{{Type: ActClick, X: 60, Y: 40}, {Type: ActSelectAll}, {Type: ActDelete}}
	if diff := cmp.Diff(want, ActionsForClear(true, chat)); diff != "" {
		t.Fatalf("unexpected clear actions (-want +got):\n%s", diff)
	}

	if actions := ActionsForType(true, "", chat); actions != nil {
		t.Fatalf("expected no actions for empty text, got %#v", actions)
	}
	if actions := ActionsForEnter(true, geom.Rectangle{}); actions != nil {
		t.Fatalf("expected no actions for empty chat, got %#v", actions)
	}
}
