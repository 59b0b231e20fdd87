// Package testutil holds fakes shared by package tests.
package testutil

import (
	"github.com/frudas24/deskrect/internal/geom"
	"github.com/frudas24/deskrect/internal/wininput"
	"github.com/frudas24/deskrect/internal/winlock"
)

// Call records a single injected action.
type Call struct {
	Name string
	X    int32
	Y    int32
	Text string
}

// FakeInjector implements wininput.Injector and records calls for tests.
// X and Y track the cursor once HasXY is set or an absolute move happens.
type FakeInjector struct {
	Calls []Call
	X     int32
	Y     int32
	HasXY bool
	Err   error
}

// Ensure FakeInjector implements the interface.
var _ wininput.Injector = (*FakeInjector)(nil)

// record appends c and returns the configured error.
func (f *FakeInjector) record(c Call) error {
	f.Calls = append(f.Calls, c)
	return f.Err
}

// MoveAbs records an absolute move and updates the cursor.
func (f *FakeInjector) MoveAbs(x, y int32) error {
	f.X, f.Y, f.HasXY = x, y, true
	return f.record(Call{Name: "MoveAbs", X: x, Y: y})
}

// LeftDown records a left mouse down.
func (f *FakeInjector) LeftDown() error {
	return f.record(Call{Name: "LeftDown"})
}

// LeftUp records a left mouse up.
func (f *FakeInjector) LeftUp() error {
	return f.record(Call{Name: "LeftUp"})
}

// ClickAt records a click at a position and updates the cursor.
func (f *FakeInjector) ClickAt(x, y int32) error {
	f.X, f.Y, f.HasXY = x, y, true
	return f.record(Call{Name: "ClickAt", X: x, Y: y})
}

// TypeUnicode records typed text.
func (f *FakeInjector) TypeUnicode(text string) error {
	return f.record(Call{Name: "TypeUnicode", Text: text})
}

// Enter records an Enter key press.
func (f *FakeInjector) Enter() error {
	return f.record(Call{Name: "Enter"})
}

// SelectAll records a select-all chord.
func (f *FakeInjector) SelectAll() error {
	return f.record(Call{Name: "SelectAll"})
}

// Delete records a Delete key press.
func (f *FakeInjector) Delete() error {
	return f.record(Call{Name: "Delete"})
}

// CursorPos returns the tracked cursor.
func (f *FakeInjector) CursorPos() (geom.Point, bool) {
	return geom.Point{X: f.X, Y: f.Y}, f.HasXY
}

// Names returns the recorded call names in order.
func (f *FakeInjector) Names() []string {
	names := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		names = append(names, c.Name)
	}
	return names
}

// FakeKeeper implements winlock.Keeper and records the anchor of each run.
type FakeKeeper struct {
	Anchors []geom.Point
}

var _ winlock.Keeper = (*FakeKeeper)(nil)

// Run records at and executes action.
func (k *FakeKeeper) Run(at geom.Point, action func() error) error {
	k.Anchors = append(k.Anchors, at)
	return action()
}
