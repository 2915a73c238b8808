// Package prompt asks the user to pick items from a list. The Prompter
// interface is what the selection workflow depends on; Checkbox is the
// terminal implementation built on bubbletea.
package prompt
