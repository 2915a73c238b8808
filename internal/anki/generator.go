package anki

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoDirectory is returned when the deck directory does not exist
var ErrNoDirectory = errors.New("directory does not exist")

// GeneratorOptions configures the deck export
type GeneratorOptions struct {
	OutputDir      string // Existing directory receiving the deck file
	DeckName       string // Deck name shown in Anki
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputDir:      ".",
		DeckName:       "Autodeck",
		IncludeHeaders: true,
	}
}

// Generator collects notes and writes them as a deck
type Generator struct {
	options *GeneratorOptions
	notes   []Note
	now     func() time.Time
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		notes:   make([]Note, 0),
		now:     time.Now,
	}
}

// SetClock replaces the clock used to date deck files
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// AddNote adds a note to the collection
func (g *Generator) AddNote(note Note) {
	g.notes = append(g.notes, note)
}

// AddNotes adds several notes keeping their order
func (g *Generator) AddNotes(notes []Note) {
	g.notes = append(g.notes, notes...)
}

// GetNotes returns all collected notes
func (g *Generator) GetNotes() []Note {
	return g.notes
}

// DeckFileName returns the dated file name used for exported decks
func DeckFileName(day time.Time, ext string) string {
	return fmt.Sprintf("anki_question_%s.%s", day.Format("2006-01-02"), ext)
}

// Save writes the deck into the output directory and returns the file
// path. The directory must exist already.
func (g *Generator) Save(asCSV bool) (string, error) {
	info, err := os.Stat(g.options.OutputDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoDirectory, g.options.OutputDir)
	}

	ext := "apkg"
	if asCSV {
		ext = "csv"
	}
	outputPath := filepath.Join(g.options.OutputDir, DeckFileName(g.now(), ext))

	if asCSV {
		err = g.GenerateCSV(outputPath)
	} else {
		err = g.GenerateAPKG(outputPath)
	}
	if err != nil {
		return "", err
	}

	return outputPath, nil
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		if err := writer.Write(wordCardFields); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, note := range g.notes {
		if err := writer.Write(note.Fields()); err != nil {
			return fmt.Errorf("failed to write note: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath string) error {
	apkgGen := NewAPKGGenerator(g.options.DeckName)
	apkgGen.now = g.now

	for _, note := range g.notes {
		apkgGen.AddNote(note)
	}

	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the note collection
func (g *Generator) Stats() (total, withExamples, withTranscription int) {
	total = len(g.notes)

	for _, note := range g.notes {
		if note.Examples != "" {
			withExamples++
		}
		if note.Transcription != "" {
			withTranscription++
		}
	}

	return
}
