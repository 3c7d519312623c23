package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the camera shake pulse triggered by firing.
// Amplitude and Timer are the authoritative state; Envelope drives the
// decaying visual offset and is recreated whenever a new pulse starts.
type ScreenShakeData struct {
	Amplitude float64 // max view offset while the pulse is active
	Timer     float64 // seconds remaining
	Envelope  *gween.Tween
	Current   float64 // current envelope value, consumed by the renderer
}

func (s *ScreenShakeData) Active() bool {
	return s.Timer > 0
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
