package components

import (
	cfg "github.com/automoto/deadeye/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the frame's mouse-look delta. JustPressed/JustReleased are
// computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Mouse look delta for this frame, in pixels. Only populated while the
	// cursor is captured.
	LookDX float64
	LookDY float64

	// Cursor tracking for delta computation.
	LastCursorX  int
	LastCursorY  int
	CursorPrimed bool // false until a first position has been seen
}

var Input = donburi.NewComponentType[InputData]()
