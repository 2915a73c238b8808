// Package settings resolves where decks are written and under which deck
// name, and remembers both in a .env file so later runs can omit them.
package settings
