// Package anki turns approved dictionary senses into flashcard notes and
// writes them out as an Anki package (.apkg) or a CSV import file.
package anki
