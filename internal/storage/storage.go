package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Default window size
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 800
	MinWindowSize       = 160
)

// Winner identifies which side won a finished game
type Winner int

const (
	WinnerNone Winner = iota
	WinnerLight
	WinnerDark
)

// UserPreferences stores user settings
type UserPreferences struct {
	WindowWidth  int       `json:"window_width"`
	WindowHeight int       `json:"window_height"`
	FontPath     string    `json:"font_path"`
	SoundEnabled bool      `json:"sound_enabled"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// correct replaces out-of-range values with defaults
func (p *UserPreferences) correct() {
	if p.WindowWidth < MinWindowSize || p.WindowHeight < MinWindowSize {
		p.WindowWidth = DefaultWindowWidth
		p.WindowHeight = DefaultWindowHeight
	}
}

// GameStats stores finished-game statistics
type GameStats struct {
	GamesPlayed   int           `json:"games_played"`
	LightWins     int           `json:"light_wins"`
	DarkWins      int           `json:"dark_wins"`
	Draws         int           `json:"draws"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// GameResult represents the result of a completed game
type GameResult struct {
	Winner   Winner
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in dir, or in the default data directory
// when dir is empty
func NewStorage(dir string) (*Storage, error) {
	dbDir, err := databaseDir(dir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// NewMemoryStorage opens a database that lives only in memory
func NewMemoryStorage() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	if err := s.get(keyPreferences, prefs); err != nil {
		return DefaultPreferences(), err
	}
	prefs.correct()
	return prefs, nil
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}
	err := s.get(keyStats, stats)
	return stats, err
}

// RecordGame records a completed game and updates statistics
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	switch result.Winner {
	case WinnerLight:
		stats.LightWins++
	case WinnerDark:
		stats.DarkWins++
	default:
		stats.Draws++
	}

	return s.SaveStats(stats)
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the value stored under key into v, leaving v untouched when
// the key is absent
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}
