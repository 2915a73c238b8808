package anki

import "strings"

// ExamplesSeparator joins example sentences inside the Examples field
const ExamplesSeparator = "<br>"

// Note is one finished flashcard
type Note struct {
	Word          string // The word being learned
	Transcription string // Pronunciation, may be empty
	Definition    string // The chosen definition
	Examples      string // Chosen examples joined with ExamplesSeparator
}

// NewNote builds a note from an approved sense. Examples keep the order
// they were chosen in; no examples give an empty Examples field.
func NewNote(word, definition string, examples []string, transcription string) Note {
	return Note{
		Word:          word,
		Transcription: transcription,
		Definition:    definition,
		Examples:      strings.Join(examples, ExamplesSeparator),
	}
}

// Fields returns the note values in note type field order
func (n Note) Fields() []string {
	return []string{n.Word, n.Transcription, n.Definition, n.Examples}
}
