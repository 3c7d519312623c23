package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKillFeed counts entries down and drops the expired ones.
func UpdateKillFeed(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	feed := components.KillFeed.Get(entry)
	dt := GetDT(e)

	kept := feed.Entries[:0]
	for i := range feed.Entries {
		feed.Entries[i].Time -= dt
		if feed.Entries[i].Time > 0 {
			kept = append(kept, feed.Entries[i])
		}
	}
	feed.Entries = kept
}

// AddKillFeed appends a notification line with the standard lifetime.
func AddKillFeed(e *ecs.ECS, message string) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	feed := components.KillFeed.Get(entry)
	feed.Entries = append(feed.Entries, components.KillFeedEntry{
		Message: message,
		Time:    cfg.Combat.KillFeedDuration,
	})
}
