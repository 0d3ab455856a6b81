package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSavedGames(t *testing.T) {
	store := openTestStore(t)

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.SaveGame("opening", "1\n0\n64\n-1\n"); err != nil {
			t.Fatalf("SaveGame failed: %v", err)
		}
		saved, err := store.LoadGame("opening")
		if err != nil {
			t.Fatalf("LoadGame failed: %v", err)
		}
		if saved.Name != "opening" {
			t.Errorf("name = %q, want opening", saved.Name)
		}
		if saved.Data != "1\n0\n64\n-1\n" {
			t.Errorf("data = %q", saved.Data)
		}
		if saved.SavedAt.IsZero() {
			t.Error("SavedAt was not stamped")
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		if err := store.SaveGame("opening", "1\n1\n64\n-1\n"); err != nil {
			t.Fatalf("SaveGame failed: %v", err)
		}
		saved, err := store.LoadGame("opening")
		if err != nil {
			t.Fatalf("LoadGame failed: %v", err)
		}
		if saved.Data != "1\n1\n64\n-1\n" {
			t.Errorf("data = %q, want the overwritten save", saved.Data)
		}
	})

	t.Run("List", func(t *testing.T) {
		if err := store.SaveGame("endgame", "1\n0\n64\n-1\n"); err != nil {
			t.Fatalf("SaveGame failed: %v", err)
		}
		games, err := store.ListGames()
		if err != nil {
			t.Fatalf("ListGames failed: %v", err)
		}
		if len(games) != 2 {
			t.Errorf("got %d games, want 2", len(games))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.DeleteGame("endgame"); err != nil {
			t.Fatalf("DeleteGame failed: %v", err)
		}
		if _, err := store.LoadGame("endgame"); err == nil {
			t.Error("loading a deleted game should fail")
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		if _, err := store.LoadGame("nope"); err == nil {
			t.Error("loading an unknown name should fail")
		}
		if err := store.SaveGame("", "data"); err == nil {
			t.Error("saving with an empty name should fail")
		}
	})
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 0 {
		t.Errorf("fresh stats report %d games", stats.GamesPlayed)
	}

	if err := store.RecordResult("White", time.Minute); err != nil {
		t.Fatalf("RecordResult failed: %v", err)
	}
	if err := store.RecordResult("black", 2*time.Minute); err != nil {
		t.Fatalf("RecordResult failed: %v", err)
	}

	stats, err = store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 2 {
		t.Errorf("games played = %d, want 2", stats.GamesPlayed)
	}
	if stats.Wins("white") != 1 || stats.Wins("black") != 1 {
		t.Errorf("wins = %v", stats.WinsByColour)
	}
	if stats.TotalPlayTime != 3*time.Minute {
		t.Errorf("play time = %v, want 3m", stats.TotalPlayTime)
	}
}
