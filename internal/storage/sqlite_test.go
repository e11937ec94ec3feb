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

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("01-first-gate", false, 3, 45); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("01-first-gate", true, 1, 30); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("02-bridge-work", true, 0, 60); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("01-first-gate", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Most recent first
	if !runs[0].Completed || runs[0].Deaths != 1 {
		t.Errorf("Expected latest run completed with 1 death, got %+v", runs[0])
	}
	if runs[1].Completed {
		t.Errorf("Expected earliest run incomplete, got %+v", runs[1])
	}
}

func TestStatsAggregation(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("01-first-gate", false, 4, 90)
	store.SaveRun("01-first-gate", true, 2, 50)
	store.SaveRun("01-first-gate", true, 0, 35)

	st, err := store.Stats("01-first-gate")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", st.Attempts)
	}
	if st.Completions != 2 {
		t.Errorf("Completions = %d, want 2", st.Completions)
	}
	if st.TotalDeaths != 6 {
		t.Errorf("TotalDeaths = %d, want 6", st.TotalDeaths)
	}
	if st.BestSecs != 35 {
		t.Errorf("BestSecs = %d, want 35", st.BestSecs)
	}
}

func TestStatsEmptyLevel(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats("nope")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Attempts != 0 || st.BestSecs != 0 {
		t.Errorf("Expected zero stats, got %+v", st)
	}
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("02-bridge-work", true, 1, 70)
	store.SaveRun("01-first-gate", false, 2, 20)

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(all))
	}
	// Ordered by level ID
	if all[0].LevelID != "01-first-gate" || all[1].LevelID != "02-bridge-work" {
		t.Errorf("Unexpected order: %s, %s", all[0].LevelID, all[1].LevelID)
	}
	if all[0].BestSecs != 0 {
		t.Errorf("Uncompleted level BestSecs = %d, want 0", all[0].BestSecs)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("01-first-gate", true, 0, 25)
	store.SaveRun("02-bridge-work", true, 0, 55)

	if err := store.ClearRuns("01-first-gate"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns("01-first-gate", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	other, _ := store.RecentRuns("02-bridge-work", 10)
	if len(other) != 1 {
		t.Errorf("Other level's runs should survive, got %d", len(other))
	}
}
