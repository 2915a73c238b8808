package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/wordcard/internal/anki"
	"codeberg.org/snonux/wordcard/internal/dictionary"
	"codeberg.org/snonux/wordcard/internal/prompt"
)

// ProcessWords runs the selection workflow for each word in order and
// returns the notes of all approved senses. Words without entries or
// without a selection produce no notes. Only prompt failures other than
// cancellation and context cancellation stop the loop.
func (p *Processor) ProcessWords(ctx context.Context, words []string) ([]anki.Note, error) {
	var notes []anki.Note

	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return notes, err
		}

		wordNotes, err := p.ProcessWord(ctx, word)
		if err != nil {
			return notes, err
		}
		if len(wordNotes) == 0 {
			continue
		}

		notes = append(notes, wordNotes...)
		p.clear()
	}

	return notes, nil
}

// ProcessWord looks one word up and returns the notes the user approved
func (p *Processor) ProcessWord(ctx context.Context, word string) ([]anki.Note, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, nil
	}

	entries := p.source.GetWordEntries(ctx, word)
	if len(entries) == 0 {
		fmt.Fprintf(p.out, "Word '%s' not found. Skipping.\n\n", word)
		return nil, nil
	}

	selected, err := p.SelectDefinitions(entries)
	if err != nil || len(selected) == 0 {
		return nil, err
	}

	notes := make([]anki.Note, 0, len(selected))
	for _, entry := range selected {
		approved, err := p.SelectExamples(entry)
		if err != nil {
			return nil, err
		}
		notes = append(notes, anki.NewNote(approved.Spelling, approved.Definition, approved.Examples, approved.Transcription))
	}

	return notes, nil
}

// SelectDefinitions asks which senses to keep and returns them in page
// order. A cancelled prompt keeps nothing.
func (p *Processor) SelectDefinitions(entries []dictionary.Entry) ([]dictionary.Entry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	fmt.Fprintln(p.out)
	title := fmt.Sprintf("SELECT DEFINITIONS FOR '%s'", strings.ToUpper(entries[0].Spelling))
	chosen, err := p.ask(title, dictionary.Definitions(entries))
	if err != nil || len(chosen) == 0 {
		return nil, err
	}

	var selected []dictionary.Entry
	for _, entry := range entries {
		if chosen[entry.Definition] > 0 {
			chosen[entry.Definition]--
			selected = append(selected, entry)
		}
	}
	return selected, nil
}

// SelectExamples asks which examples of entry to keep. An entry without
// examples is returned unchanged with an empty example list and no
// question is asked.
func (p *Processor) SelectExamples(entry dictionary.Entry) (dictionary.Entry, error) {
	if !entry.HasExamples() {
		return entry.WithExamples(nil), nil
	}

	fmt.Fprintln(p.out)
	title := fmt.Sprintf("'%s' - %s", strings.ToUpper(entry.Spelling), strings.ToUpper(entry.Definition))
	chosen, err := p.ask(title, entry.Examples)
	if err != nil {
		return entry, err
	}

	// A repeated sentence is kept only as often as it was chosen
	kept := make([]string, 0, len(entry.Examples))
	for _, example := range entry.Examples {
		if chosen[example] > 0 {
			chosen[example]--
			kept = append(kept, example)
		}
	}
	return entry.WithExamples(kept), nil
}

// ask presents choices and counts how often each one was chosen.
// Cancellation is an empty answer, not an error.
func (p *Processor) ask(title string, choices []string) (map[string]int, error) {
	answer, err := p.prompter.Select(title, choices)
	if errors.Is(err, prompt.ErrCancelled) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	chosen := make(map[string]int, len(answer))
	for _, a := range answer {
		chosen[a]++
	}
	return chosen, nil
}
