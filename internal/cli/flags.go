package cli

import (
	"time"

	"codeberg.org/snonux/wordcard/internal/dictionary"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	BatchFile string
	Verbose   bool

	// Deck flags
	Path string
	Deck string
	CSV  bool

	// Dictionary flags
	URLTemplate string
	UserAgent   string
	Timeout     time.Duration
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		URLTemplate: dictionary.DefaultURLTemplate,
		UserAgent:   dictionary.DefaultUserAgent,
		Timeout:     dictionary.DefaultTimeout,
	}
}
