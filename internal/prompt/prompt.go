package prompt

import "errors"

// ErrCancelled is returned when the user leaves a prompt without confirming
var ErrCancelled = errors.New("prompt cancelled")

// Prompter presents a multi-select question and blocks until answered
type Prompter interface {
	// Select returns the chosen subset of choices in their original
	// order. ErrCancelled reports a dismissed prompt.
	Select(title string, choices []string) ([]string, error)
}

// PrompterFunc adapts a function to the Prompter interface
type PrompterFunc func(title string, choices []string) ([]string, error)

// Select calls f
func (f PrompterFunc) Select(title string, choices []string) ([]string, error) {
	return f(title, choices)
}
