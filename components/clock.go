package components

import "github.com/yohamta/donburi"

// ClockData carries the fixed simulation step for the current tick.
type ClockData struct {
	DT float64 // seconds
}

var Clock = donburi.NewComponentType[ClockData]()
