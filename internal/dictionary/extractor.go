package dictionary

import (
	"errors"
	"strings"

	"codeberg.org/snonux/wordcard/internal/dom"
)

// ErrNotFound is returned when a page holds no definition blocks
var ErrNotFound = errors.New("word not found")

// Page structure of the Cambridge dictionary
var (
	definitionHeading = dom.Class("div", "ddef_h")
	definitionText    = dom.Class("div", "def ddef_d db")
	definitionBody    = dom.Class("div", "def-body ddef_b")
	exampleSentence   = dom.Class("div", "examp dexamp")
	usPronunciation   = dom.Class("", "us dpron-i")
	phoneticSpelling  = dom.Class("", "ipa")
)

// ExtractMarkup parses a word page and extracts its entries
func ExtractMarkup(markup, spelling string) ([]Entry, error) {
	root, err := dom.ParseString(markup)
	if err != nil {
		return nil, err
	}
	return Extract(root, spelling)
}

// Extract builds the distinct senses found under root. Entries come
// back in page order; a later block whose definition text equals an
// earlier one is dropped. ErrNotFound means the page had no definition
// blocks at all.
func Extract(root dom.Node, spelling string) ([]Entry, error) {
	headings := dom.FindAll(root, definitionHeading)
	if len(headings) == 0 {
		return nil, ErrNotFound
	}

	transcription := extractTranscription(root)

	entries := make([]Entry, 0, len(headings))
	seen := make(map[string]struct{}, len(headings))

	for _, heading := range headings {
		definition, ok := extractDefinition(heading)
		if !ok {
			continue
		}
		if _, dup := seen[definition]; dup {
			continue
		}
		seen[definition] = struct{}{}

		entries = append(entries, Entry{
			Spelling:      spelling,
			Transcription: transcription,
			Definition:    definition,
			Examples:      extractExamples(heading),
		})
	}

	return entries, nil
}

// extractDefinition returns the cleaned definition text of a heading
// block. Blocks without a text node or with only blank text are skipped.
func extractDefinition(heading dom.Node) (string, bool) {
	node := dom.Find(heading, definitionText)
	if node == nil {
		return "", false
	}

	text := CollapseSpace(node.Text(" "))
	text = strings.TrimSpace(strings.ReplaceAll(text, ":", ""))
	if text == "" {
		return "", false
	}
	return text, true
}

// extractExamples collects the examples of the body block that follows
// a heading. Examples are never stored inside the heading itself.
func extractExamples(heading dom.Node) []string {
	examples := []string{}

	body := dom.NextSiblingMatching(heading, definitionBody)
	if body == nil {
		return examples
	}

	for _, node := range dom.FindAll(body, exampleSentence) {
		if text := CollapseSpace(node.Text(" ")); text != "" {
			examples = append(examples, text)
		}
	}
	return examples
}

// extractTranscription returns the IPA text of the first US
// pronunciation block on the page, or "".
func extractTranscription(root dom.Node) string {
	block := dom.Find(root, usPronunciation)
	if block == nil {
		return ""
	}
	ipa := dom.Find(block, phoneticSpelling)
	if ipa == nil {
		return ""
	}
	return strings.TrimSpace(ipa.Text(""))
}

// CollapseSpace replaces every run of whitespace with a single space and
// trims both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
