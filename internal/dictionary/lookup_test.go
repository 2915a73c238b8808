package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/snonux/wordcard/internal/testutil"
)

type fakeSource struct {
	pages map[string]string
	calls []string
}

func (s *fakeSource) Fetch(ctx context.Context, word string) (string, error) {
	s.calls = append(s.calls, word)
	page, ok := s.pages[word]
	if !ok {
		return "", errors.New("boom: " + ErrUnavailable.Error())
	}
	return page, nil
}

func TestGetWordEntries(t *testing.T) {
	source := &fakeSource{pages: map[string]string{
		"run":  testutil.CambridgePage("rʌn", testutil.Sense{Definition: "to move quickly"}),
		"qwzx": "<html><body>Did you mean?</body></html>",
	}}
	logger, logs := newObservedLogger()
	d := New(source, logger)
	ctx := context.Background()

	entries := d.GetWordEntries(ctx, "  run \n")
	assert.Len(t, entries, 1)
	assert.Equal(t, "run", entries[0].Spelling)
	assert.Equal(t, "rʌn", entries[0].Transcription)

	assert.Empty(t, d.GetWordEntries(ctx, "qwzx"))
	assert.Equal(t, 1, logs.FilterMessage("Word not found, make sure you wrote it right").Len())

	assert.Empty(t, d.GetWordEntries(ctx, "offline"))

	assert.Empty(t, d.GetWordEntries(ctx, "   "))
	assert.Equal(t, []string{"run", "qwzx", "offline"}, source.calls, "blank words must not be fetched")
}
