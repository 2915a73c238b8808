// Package processor drives a run: it looks every word up, lets the user
// narrow definitions and examples, turns the approved senses into notes
// and hands them to the deck generator.
package processor
