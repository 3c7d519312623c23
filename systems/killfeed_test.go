package systems

import (
	"testing"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/yohamta/donburi/ecs"
)

func feedEntries(e *ecs.ECS) []components.KillFeedEntry {
	entry, _ := components.Session.First(e.World)
	return components.KillFeed.Get(entry).Entries
}

func TestKillFeedEntriesExpire(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)

	AddKillFeed(e, "first")
	entries := feedEntries(e)
	if len(entries) != 1 || entries[0].Time != cfg.Combat.KillFeedDuration {
		t.Fatalf("entries = %+v, want one fresh entry", entries)
	}

	tick(e, ticksFor(cfg.Combat.KillFeedDuration/2), UpdateKillFeed)
	AddKillFeed(e, "second")

	tick(e, ticksFor(cfg.Combat.KillFeedDuration/2), UpdateKillFeed)
	entries = feedEntries(e)
	if len(entries) != 1 || entries[0].Message != "second" {
		t.Fatalf("entries = %+v, want only the younger entry left", entries)
	}

	tick(e, ticksFor(cfg.Combat.KillFeedDuration), UpdateKillFeed)
	if entries = feedEntries(e); len(entries) != 0 {
		t.Fatalf("entries = %+v, want all expired", entries)
	}
}

func TestKillFeedKeepsInsertionOrder(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)

	AddKillFeed(e, "a")
	AddKillFeed(e, "b")
	AddKillFeed(e, "c")

	entries := feedEntries(e)
	if len(entries) != 3 || entries[0].Message != "a" || entries[2].Message != "c" {
		t.Fatalf("entries = %+v, want a, b, c", entries)
	}
}
