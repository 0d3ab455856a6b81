package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyStats   = "stats"
	gamePrefix = "game:"
)

// SavedGame is a named save slot: the engine's text serialization plus
// bookkeeping metadata.
type SavedGame struct {
	Name    string    `json:"name"`
	Data    string    `json:"data"`
	SavedAt time.Time `json:"saved_at"`
}

// GameStats stores match statistics across games.
type GameStats struct {
	GamesPlayed   int            `json:"games_played"`
	WinsByColour  map[string]int `json:"wins_by_colour"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
}

// NewGameStats returns empty match statistics.
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByColour: make(map[string]int),
	}
}

// Wins returns the number of wins recorded for a colour ("white"/"black").
func (s *GameStats) Wins(colour string) int {
	return s.WinsByColour[colour]
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens the store in the platform data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the store in the given directory. Used by tests and by
// callers that manage their own data location.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame stores a serialized game under the given name, overwriting any
// previous save with that name.
func (s *Store) SaveGame(name, data string) error {
	if name == "" {
		return fmt.Errorf("empty save name")
	}

	saved := SavedGame{
		Name:    name,
		Data:    data,
		SavedAt: time.Now(),
	}
	raw, err := json.Marshal(&saved)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+name), raw)
	})
}

// LoadGame retrieves a saved game by name.
func (s *Store) LoadGame(name string) (*SavedGame, error) {
	var saved SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no saved game named %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// DeleteGame removes a saved game by name.
func (s *Store) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gamePrefix + name))
	})
}

// ListGames returns every saved game, metadata included.
func (s *Store) ListGames() ([]SavedGame, error) {
	var games []SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var saved SavedGame
				if err := json.Unmarshal(val, &saved); err != nil {
					return err
				}
				games = append(games, saved)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return games, nil
}

// LoadStats loads match statistics, returning empty stats if none were
// recorded yet.
func (s *Store) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// SaveStats saves match statistics.
func (s *Store) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// RecordResult records a finished game won by the given colour
// ("white" or "black") and how long it took.
func (s *Store) RecordResult(winner string, duration time.Duration) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += duration
	stats.WinsByColour[strings.ToLower(winner)]++

	return s.SaveStats(stats)
}
