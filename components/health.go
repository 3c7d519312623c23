package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Alive reports whether the entity still takes part in the simulation.
// Health may go negative internally; there is no floor clamp.
func (h *HealthData) Alive() bool {
	return h.Current > 0
}

func (h *HealthData) Ratio() float64 {
	if h.Max == 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
