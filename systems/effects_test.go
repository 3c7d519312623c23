package systems

import (
	"testing"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
)

func TestTriggerScreenShake(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	entry, _ := components.Session.First(e.World)

	TriggerScreenShake(e)
	shake := components.ScreenShake.Get(entry)

	if !shake.Active() {
		t.Fatal("shake should be active right after the trigger")
	}
	if shake.Amplitude != cfg.Combat.ShakeAmplitude || shake.Timer != cfg.Combat.ShakeDuration {
		t.Fatalf("shake = %+v, want the configured pulse", shake)
	}
	if shake.Envelope == nil {
		t.Fatal("the decay envelope should be armed")
	}
}

func TestScreenShakeDecays(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	entry, _ := components.Session.First(e.World)

	TriggerScreenShake(e)
	shake := components.ScreenShake.Get(entry)

	tick(e, 3, UpdateEffects)
	mid := shake.Current
	if mid >= cfg.Combat.ShakeAmplitude {
		t.Fatalf("envelope did not decay: %v", mid)
	}

	tick(e, ticksFor(cfg.Combat.ShakeDuration)*2, UpdateEffects)
	if shake.Active() {
		t.Fatal("shake should have ended")
	}
	if shake.Current != 0 || shake.Envelope != nil {
		t.Fatalf("envelope should be spent, got current=%v", shake.Current)
	}
}

func TestRetriggerReplacesRunningPulse(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	entry, _ := components.Session.First(e.World)

	TriggerScreenShake(e)
	tick(e, 5, UpdateEffects)

	TriggerScreenShake(e)
	shake := components.ScreenShake.Get(entry)
	if shake.Timer != cfg.Combat.ShakeDuration {
		t.Fatalf("timer = %v, want a fresh pulse", shake.Timer)
	}
	if shake.Current != cfg.Combat.ShakeAmplitude {
		t.Fatalf("current = %v, want the full amplitude again", shake.Current)
	}
}
