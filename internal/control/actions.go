// Package control handles input protocol and gesture mapping.
package control

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActMove moves the mouse cursor.
	ActMove ActionType = "move"
	// ActLeftDown presses the left mouse button.
	ActLeftDown ActionType = "left_down"
	// ActLeftUp releases the left mouse button.
	ActLeftUp ActionType = "left_up"
	// ActClick performs a click at a position.
	ActClick ActionType = "click"
	// ActType types unicode text.
	ActType ActionType = "type"
	// ActEnter presses Enter.
	ActEnter ActionType = "enter"
	// ActSelectAll selects the focused field's contents.
	ActSelectAll ActionType = "select_all"
	// ActDelete presses Delete.
	ActDelete ActionType = "delete"
)

// Action describes an input operation in virtual-desktop pixels.
type Action struct {
	Type ActionType
	X    int32
	Y    int32
	Text string
}
