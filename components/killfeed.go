package components

import "github.com/yohamta/donburi"

// KillFeedEntry is one transient notification line.
type KillFeedEntry struct {
	Message string
	Time    float64 // seconds until the entry expires
}

type KillFeedData struct {
	Entries []KillFeedEntry
}

var KillFeed = donburi.NewComponentType[KillFeedData]()
