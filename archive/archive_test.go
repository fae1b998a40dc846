package archive

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/nathoo/raidcore/types"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestRecordStoresResult(t *testing.T) {
	store := openTempStore(t)

	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	finished := started.Add(42 * time.Second)
	result := types.BattleResult{
		Seed:      12345,
		Rounds:    7,
		Outcome:   types.OutcomePartyVictory,
		Survivors: 2,
		LogPath:   "battle_log.json",
	}
	if err := store.Record(context.Background(), result, started, finished); err != nil {
		t.Fatalf("record battle: %v", err)
	}

	var seed int64
	var outcome, startedAt string
	row := store.sqlDB.QueryRow("SELECT seed, outcome, started_at FROM battles WHERE seed = ?", 12345)
	if err := row.Scan(&seed, &outcome, &startedAt); err != nil {
		t.Fatalf("scan battle: %v", err)
	}
	if seed != 12345 {
		t.Fatalf("expected seed 12345, got %d", seed)
	}
	if outcome != types.OutcomePartyVictory.String() {
		t.Fatalf("expected outcome %q, got %q", types.OutcomePartyVictory.String(), outcome)
	}
	if startedAt != started.Format(timeFormat) {
		t.Fatalf("expected started_at %s, got %s", started.Format(timeFormat), startedAt)
	}
}

func TestRecordDefaultsZeroTimes(t *testing.T) {
	store := openTempStore(t)

	if err := store.Record(context.Background(), types.BattleResult{Seed: 1}, time.Time{}, time.Time{}); err != nil {
		t.Fatalf("record battle: %v", err)
	}

	var startedAt string
	row := store.sqlDB.QueryRow("SELECT started_at FROM battles WHERE seed = ?", 1)
	if err := row.Scan(&startedAt); err != nil {
		t.Fatalf("scan battle: %v", err)
	}
	if startedAt == "" {
		t.Fatal("expected started_at to be set")
	}
}

func TestRecordRequiresStore(t *testing.T) {
	var store *Store
	if err := store.Record(context.Background(), types.BattleResult{}, time.Now(), time.Now()); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	store := openTempStore(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		result := types.BattleResult{
			Seed:      int64(i),
			Rounds:    i,
			Outcome:   types.OutcomeBossVictory,
			Survivors: 0,
			LogPath:   "battle_log.json",
		}
		at := base.Add(time.Duration(i) * time.Minute)
		if err := store.Record(context.Background(), result, at, at); err != nil {
			t.Fatalf("record battle %d: %v", i, err)
		}
	}

	entries, err := store.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Seed != 3 || entries[1].Seed != 2 {
		t.Fatalf("expected seeds [3 2], got [%d %d]", entries[0].Seed, entries[1].Seed)
	}
	if entries[0].Outcome != types.OutcomeBossVictory.String() {
		t.Fatalf("expected outcome %q, got %q", types.OutcomeBossVictory.String(), entries[0].Outcome)
	}
	want := base.Add(3 * time.Minute)
	if !entries[0].StartedAt.Equal(want) {
		t.Fatalf("expected started_at %v, got %v", want, entries[0].StartedAt)
	}
}

func TestRecentEmptyArchive(t *testing.T) {
	store := openTempStore(t)

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestRecentDefaultsLimit(t *testing.T) {
	store := openTempStore(t)

	for i := 1; i <= 25; i++ {
		result := types.BattleResult{Seed: int64(i), Outcome: types.OutcomeAborted}
		if err := store.Record(context.Background(), result, time.Now(), time.Now()); err != nil {
			t.Fatalf("record battle %d: %v", i, err)
		}
	}

	entries, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 20 {
		t.Fatalf("expected default limit of 20 entries, got %d", len(entries))
	}
}

func TestCloseIsNilSafe(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raidcore.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil && err != sql.ErrConnDone {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
