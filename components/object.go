package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps a resolv object on the ground (X/Z) plane. Resolv's Y
// axis maps to world Z; vertical position plays no part in blocking.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
