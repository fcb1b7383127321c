package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Level: "level-one", Outcome: OutcomeLost, Kills: 8, Ticks: 900},
		{Level: "level-two", Outcome: OutcomeWon, Kills: 11, Ticks: 5000},
		{Level: "level-two", Outcome: OutcomeWon, Kills: 11, Ticks: 4000},
		{Level: "level-two", Outcome: OutcomeLost, Kills: 30, Ticks: 7000},
		{Level: "level-one", Outcome: OutcomeAbandoned, Kills: 2, Ticks: 100},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(top))
	}

	// Wins first, faster win ahead, then the most kills
	if top[0].Outcome != OutcomeWon || top[0].Ticks != 4000 {
		t.Errorf("first = %+v, expected the 4000-tick win", top[0])
	}
	if top[1].Outcome != OutcomeWon || top[1].Ticks != 5000 {
		t.Errorf("second = %+v, expected the 5000-tick win", top[1])
	}
	if top[2].Kills != 30 {
		t.Errorf("third = %+v, expected the 30-kill loss", top[2])
	}
	if top[0].Difficulty != "normal" {
		t.Errorf("Difficulty = %q, expected default normal", top[0].Difficulty)
	}
}

func TestStoreRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Level: "level-one", Outcome: "advance"}); err == nil {
		t.Error("SaveRun() should reject a non-final outcome")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{Level: "level-one", Outcome: OutcomeLost, Kills: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(recent))
	}
	// Same timestamp within a second; id breaks the tie
	if recent[0].Kills != 4 || recent[1].Kills != 3 {
		t.Errorf("recent runs not newest first: %+v", recent)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreBestKills(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestKills()
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("expected 0 for an empty store, got %d", best)
	}

	store.SaveRun(RunRecord{Level: "level-one", Outcome: OutcomeLost, Kills: 4})
	store.SaveRun(RunRecord{Level: "level-two", Outcome: OutcomeWon, Kills: 12})

	best, err = store.BestKills()
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("expected best kills of 12, got %d", best)
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Level: "level-one", Outcome: OutcomeLost, Kills: 4, Ticks: 100})
	store.SaveRun(RunRecord{Level: "level-two", Outcome: OutcomeWon, Kills: 12, Ticks: 300})
	store.SaveRun(RunRecord{Level: "level-one", Outcome: OutcomeAbandoned, Kills: 2, Ticks: 50})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.Losses != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.BestKills != 12 || stats.TotalTicks != 450 {
		t.Errorf("unexpected aggregates: %+v", stats)
	}
	if stats.AvgKills != 6 {
		t.Errorf("AvgKills = %v, expected 6", stats.AvgKills)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() after clear failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("expected empty stats after clear, got %+v", stats)
	}
}
