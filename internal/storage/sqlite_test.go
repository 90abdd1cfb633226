package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("lander", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game, must not leak into lander's board.
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("lander", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("lander", (i+1)*100)
	}

	scores, err := store.TopScores("lander", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("lander", 100)
	store.SaveScore("lander", 300)
	store.SaveScore("lander", 200)

	high, err = store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("lander", 100)
	store.SaveScore("lander", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("lander"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	landerScores, _ := store.TopScores("lander", 10)
	if len(landerScores) != 0 {
		t.Errorf("Expected 0 lander scores after clear, got %d", len(landerScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other games should not be affected by the clear")
	}
}

func TestStoreSaveLanding(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveLanding(LandingRecord{
		GameID:         "lander",
		Outcome:        OutcomeSafe,
		Score:          150,
		FuelRemaining:  62.5,
		TouchdownSpeed: 1.4,
		PadLanding:     true,
		DurationSecs:   45,
	})
	if err != nil {
		t.Fatalf("SaveLanding() failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected a non-zero insert ID")
	}

	records, err := store.RecentLandings("lander", 10)
	if err != nil {
		t.Fatalf("RecentLandings() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 landing record, got %d", len(records))
	}

	rec := records[0]
	if rec.Outcome != OutcomeSafe || !rec.PadLanding {
		t.Errorf("Record fields lost: %+v", rec)
	}
	if rec.FuelRemaining != 62.5 || rec.TouchdownSpeed != 1.4 {
		t.Errorf("Float columns lost precision: %+v", rec)
	}
}

func TestStoreSaveLandingRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveLanding(LandingRecord{GameID: "lander", Outcome: "bounced"})
	if err == nil {
		t.Error("Expected an error for an unknown outcome")
	}
}

func TestStoreRecentLandingsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveLanding(LandingRecord{
			GameID:  "lander",
			Outcome: OutcomeCrash,
			Score:   i,
		})
	}

	records, err := store.RecentLandings("lander", 3)
	if err != nil {
		t.Fatalf("RecentLandings() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records with limit, got %d", len(records))
	}
	// Most recent first.
	if records[0].Score != 4 || records[1].Score != 3 || records[2].Score != 2 {
		t.Errorf("Records not in reverse insertion order: %v", records)
	}
}

func TestStoreLandingStats(t *testing.T) {
	store := openTestStore(t)

	// Empty history
	stats, err := store.GetLandingStats("lander")
	if err != nil {
		t.Fatalf("GetLandingStats() failed: %v", err)
	}
	if stats.Attempts != 0 || stats.SuccessRate != 0 {
		t.Errorf("Empty history should give zero stats, got %+v", stats)
	}

	store.SaveLanding(LandingRecord{GameID: "lander", Outcome: OutcomeSafe, Score: 150, PadLanding: true})
	store.SaveLanding(LandingRecord{GameID: "lander", Outcome: OutcomeSafe, Score: 90})
	store.SaveLanding(LandingRecord{GameID: "lander", Outcome: OutcomeCrash})
	store.SaveLanding(LandingRecord{GameID: "lander", Outcome: OutcomeCrash})

	stats, err = store.GetLandingStats("lander")
	if err != nil {
		t.Fatalf("GetLandingStats() failed: %v", err)
	}

	if stats.Attempts != 4 {
		t.Errorf("Attempts = %d, expected 4", stats.Attempts)
	}
	if stats.SafeCount != 2 {
		t.Errorf("SafeCount = %d, expected 2", stats.SafeCount)
	}
	if stats.PadCount != 1 {
		t.Errorf("PadCount = %d, expected 1", stats.PadCount)
	}
	if stats.BestScore != 150 {
		t.Errorf("BestScore = %d, expected 150", stats.BestScore)
	}
	if stats.SuccessRate != 0.5 {
		t.Errorf("SuccessRate = %f, expected 0.5", stats.SuccessRate)
	}
}
