package dictionary

// Entry is one sense of a looked-up word
type Entry struct {
	Spelling      string   // The word as it was queried
	Transcription string   // US IPA transcription, shared by all senses of a page
	Definition    string   // Cleaned definition text, unique within one lookup
	Examples      []string // Example sentences in page order, never nil
}

// HasExamples reports whether the entry carries any example sentence
func (e Entry) HasExamples() bool {
	return len(e.Examples) > 0
}

// WithExamples returns a copy of the entry holding the given examples.
// It is used to narrow the examples after the user made a choice.
func (e Entry) WithExamples(examples []string) Entry {
	narrowed := make([]string, len(examples))
	copy(narrowed, examples)
	e.Examples = narrowed
	return e
}

// Definitions returns the definition texts of entries in order
func Definitions(entries []Entry) []string {
	defs := make([]string, 0, len(entries))
	for _, e := range entries {
		defs = append(defs, e.Definition)
	}
	return defs
}
