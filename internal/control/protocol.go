package control

import "github.com/frudas24/deskrect/internal/geom"

// Message is a control websocket payload.
type Message struct {
	T       string          `json:"t"`
	ID      int             `json:"id,omitempty"`
	X       float64         `json:"x,omitempty"`
	Y       float64         `json:"y,omitempty"`
	DX      int32           `json:"dx,omitempty"`
	DY      int32           `json:"dy,omitempty"`
	Text    string          `json:"text,omitempty"`
	Mode    string          `json:"mode,omitempty"`
	Idx     int             `json:"idx,omitempty"`
	Step    string          `json:"step,omitempty"`
	Rect    *geom.Rectangle `json:"rect,omitempty"`
	Enabled *bool           `json:"enabled,omitempty"`
}

// Reply is sent back when a message is rejected.
type Reply struct {
	T     string `json:"t"`
	Error string `json:"error,omitempty"`
}
