package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decays the screen shake pulse.
func UpdateEffects(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	dt := GetDT(e)

	if shake.Timer > 0 {
		shake.Timer -= dt
		if shake.Timer < 0 {
			shake.Timer = 0
		}
	}

	if shake.Envelope != nil {
		value, done := shake.Envelope.Update(float32(dt))
		shake.Current = float64(value)
		if done {
			shake.Envelope = nil
			shake.Current = 0
		}
	}
}

// TriggerScreenShake starts a fresh shake pulse. A pulse fired mid-decay
// replaces the running one rather than stacking on it.
func TriggerScreenShake(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)

	shake.Amplitude = cfg.Combat.ShakeAmplitude
	shake.Timer = cfg.Combat.ShakeDuration
	shake.Current = cfg.Combat.ShakeAmplitude
	shake.Envelope = gween.New(
		float32(cfg.Combat.ShakeAmplitude), 0,
		float32(cfg.Combat.ShakeDuration),
		ease.Linear,
	)
}
