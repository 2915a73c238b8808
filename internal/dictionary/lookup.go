package dictionary

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// PageSource retrieves the raw page for a word
type PageSource interface {
	Fetch(ctx context.Context, word string) (string, error)
}

// Dictionary combines a page source with the extractor
type Dictionary struct {
	source PageSource
	log    *zap.Logger
}

// New creates a dictionary reading pages from source
func New(source PageSource, logger *zap.Logger) *Dictionary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dictionary{
		source: source,
		log:    logger.With(zap.String("component", "dictionary")),
	}
}

// GetWordEntries looks a word up and returns its senses. An unreachable
// dictionary, an unknown word and an empty word all yield no entries;
// the reason is logged, never returned.
func (d *Dictionary) GetWordEntries(ctx context.Context, word string) []Entry {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}

	markup, err := d.source.Fetch(ctx, word)
	if err != nil {
		d.log.Debug("skipping word", zap.String("word", word), zap.Error(err))
		return nil
	}

	entries, err := ExtractMarkup(markup, word)
	switch {
	case errors.Is(err, ErrNotFound):
		d.log.Warn("Word not found, make sure you wrote it right", zap.String("word", word))
		return nil
	case err != nil:
		d.log.Warn("Failed to read dictionary page", zap.String("word", word), zap.Error(err))
		return nil
	}

	d.log.Debug("extracted entries", zap.String("word", word), zap.Int("senses", len(entries)))
	return entries
}
