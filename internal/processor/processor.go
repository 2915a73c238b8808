package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"codeberg.org/snonux/wordcard/internal/anki"
	"codeberg.org/snonux/wordcard/internal/dictionary"
	"codeberg.org/snonux/wordcard/internal/prompt"
	"codeberg.org/snonux/wordcard/internal/settings"
)

// ErrNoNotes is returned by Run when no word produced a note
var ErrNoNotes = errors.New("no notes were created")

// clearScreen moves the cursor home and erases the terminal
const clearScreen = "\033[H\033[2J"

// WordSource looks words up in a dictionary
type WordSource interface {
	GetWordEntries(ctx context.Context, word string) []dictionary.Entry
}

// Options controls one run
type Options struct {
	Settings settings.Settings // Deck path and name given on the command line
	CSV      bool              // Export CSV instead of an .apkg package
}

// Processor handles the main word processing logic
type Processor struct {
	source   WordSource
	prompter prompt.Prompter
	store    *settings.Store
	out      io.Writer
	clear    func()
	now      func() time.Time
}

// NewProcessor creates a new word processor. Progress goes to out, which
// defaults to stdout.
func NewProcessor(source WordSource, prompter prompt.Prompter, store *settings.Store, out io.Writer) *Processor {
	if out == nil {
		out = os.Stdout
	}
	p := &Processor{
		source:   source,
		prompter: prompter,
		store:    store,
		out:      out,
		now:      time.Now,
	}
	p.clear = func() { fmt.Fprint(p.out, clearScreen) }
	return p
}

// Run resolves the deck settings, processes all words and saves the deck.
// It returns the path of the written deck file.
func (p *Processor) Run(ctx context.Context, words []string, opts Options) (string, error) {
	resolved, err := p.resolveSettings(opts.Settings)
	if err != nil {
		return "", err
	}

	notes, err := p.ProcessWords(ctx, words)
	if err != nil {
		return "", err
	}
	if len(notes) == 0 {
		return "", ErrNoNotes
	}

	return p.GenerateAnkiFile(notes, resolved, opts.CSV)
}

// resolveSettings fills in the deck settings and remembers them for the
// next run
func (p *Processor) resolveSettings(given settings.Settings) (settings.Settings, error) {
	resolved, err := p.store.Resolve(given)
	if err != nil {
		return settings.Settings{}, err
	}

	if err := p.store.Save(resolved); err != nil {
		return settings.Settings{}, err
	}
	fmt.Fprintf(p.out, "Updated settings at %s\n", p.store.File())

	return resolved, nil
}

// GenerateAnkiFile writes notes as a deck into the resolved directory
// and returns the file path
func (p *Processor) GenerateAnkiFile(notes []anki.Note, deck settings.Settings, asCSV bool) (string, error) {
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputDir:      deck.Path,
		DeckName:       deck.Deck,
		IncludeHeaders: true,
	})
	gen.SetClock(p.now)
	gen.AddNotes(notes)

	outputPath, err := gen.Save(asCSV)
	if err != nil {
		return "", fmt.Errorf("failed to save deck: %w", err)
	}

	total, withExamples, withTranscription := gen.Stats()
	fmt.Fprintf(p.out, "Generated %d cards (%d with examples, %d with transcription)\n",
		total, withExamples, withTranscription)
	fmt.Fprintf(p.out, "Deck saved successfully to %s\n", outputPath)

	return outputPath, nil
}
