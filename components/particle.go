package components

import (
	"image/color"

	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ParticleData is one debris particle from a death burst.
type ParticleData struct {
	Velocity gamemath.Vector3
	Color    color.RGBA
	Life     float64 // seconds remaining; expired at <= 0
	MaxLife  float64
}

// LifeRatio is the remaining fraction of the particle's lifetime, used by
// the renderer as alpha.
func (p *ParticleData) LifeRatio() float64 {
	if p.MaxLife == 0 {
		return 0
	}
	return gamemath.Clamp(p.Life/p.MaxLife, 0, 1)
}

var Particle = donburi.NewComponentType[ParticleData]()
