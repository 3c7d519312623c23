package components

import (
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData holds an entity's world position.
type TransformData struct {
	Position gamemath.Vector3
}

var Transform = donburi.NewComponentType[TransformData]()
