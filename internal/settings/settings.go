package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// PathKey holds the deck directory in the .env file
	PathKey = "EN_TO_EN_PATH"

	// DeckKey holds the deck name in the .env file
	DeckKey = "EN_TO_EN_DECK"

	// DefaultDeckName is used when no deck name was given anywhere
	DefaultDeckName = "Autodeck"
)

// ErrNoPath is returned when no deck path was given and none is stored
var ErrNoPath = errors.New("no path specified and none found in .env")

// Settings are the resolved deck location and name
type Settings struct {
	Path string
	Deck string
}

// Store reads and writes the persisted settings
type Store struct {
	file string
}

// DefaultFile returns $XDG_CONFIG_HOME/wordcard/.env
func DefaultFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "wordcard", ".env"), nil
}

// NewStore creates a store backed by the given .env file
func NewStore(file string) *Store {
	return &Store{file: file}
}

// File returns the path of the backing .env file
func (s *Store) File() string {
	return s.file
}

// Load reads the .env file. A missing file yields no values.
func (s *Store) Load() (map[string]string, error) {
	values, err := godotenv.Read(s.file)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.file, err)
	}
	return values, nil
}

// lookup prefers the process environment over the .env file
func lookup(stored map[string]string, key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return stored[key]
}

// Resolve fills the empty fields of given from the environment and the
// .env file, then falls back to defaults. The path has no default.
func (s *Store) Resolve(given Settings) (Settings, error) {
	stored, err := s.Load()
	if err != nil {
		return Settings{}, err
	}

	resolved := given
	if resolved.Path == "" {
		resolved.Path = lookup(stored, PathKey)
	}
	if resolved.Deck == "" {
		resolved.Deck = lookup(stored, DeckKey)
	}
	if resolved.Deck == "" {
		resolved.Deck = DefaultDeckName
	}

	if resolved.Path == "" {
		return Settings{}, ErrNoPath
	}

	return resolved, nil
}

// Save writes the settings into the .env file keeping unrelated keys
func (s *Store) Save(settings Settings) error {
	values, err := s.Load()
	if err != nil {
		return err
	}

	values[PathKey] = settings.Path
	values[DeckKey] = settings.Deck

	if err := os.MkdirAll(filepath.Dir(s.file), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := godotenv.Write(values, s.file); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.file, err)
	}

	return nil
}
