package internal

// Version is the wordcard release, overridden at link time with
// -ldflags "-X codeberg.org/snonux/wordcard/internal.Version=..."
var Version = "0.1.0"
