package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultURLTemplate is the Cambridge English dictionary word page.
	// The {word} placeholder is replaced by the path-escaped word.
	DefaultURLTemplate = "https://dictionary.cambridge.org/dictionary/english/{word}"

	// DefaultUserAgent identifies as a desktop browser; the dictionary
	// rejects clients announcing themselves as scripts.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/91.0.4472.124 Safari/537.36"

	// DefaultTimeout bounds a single page request
	DefaultTimeout = 10 * time.Second

	wordPlaceholder = "{word}"
)

// ErrUnavailable is returned when the dictionary page could not be retrieved
var ErrUnavailable = errors.New("dictionary unavailable")

// FetcherOptions configures the page fetcher
type FetcherOptions struct {
	URLTemplate string        // Page URL with a {word} placeholder
	UserAgent   string        // User-Agent header sent with every request
	Timeout     time.Duration // Request timeout
}

// DefaultFetcherOptions returns the Cambridge settings
func DefaultFetcherOptions() *FetcherOptions {
	return &FetcherOptions{
		URLTemplate: DefaultURLTemplate,
		UserAgent:   DefaultUserAgent,
		Timeout:     DefaultTimeout,
	}
}

// Fetcher retrieves raw word pages from the dictionary
type Fetcher struct {
	urlTemplate string
	userAgent   string
	client      *http.Client
	log         *zap.Logger
}

// NewFetcher creates a fetcher. Zero option fields fall back to the defaults.
func NewFetcher(options *FetcherOptions, logger *zap.Logger) *Fetcher {
	opts := *DefaultFetcherOptions()
	if options != nil {
		if options.URLTemplate != "" {
			opts.URLTemplate = options.URLTemplate
		}
		if options.UserAgent != "" {
			opts.UserAgent = options.UserAgent
		}
		if options.Timeout > 0 {
			opts.Timeout = options.Timeout
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		urlTemplate: opts.URLTemplate,
		userAgent:   opts.UserAgent,
		client:      &http.Client{Timeout: opts.Timeout},
		log:         logger.With(zap.String("component", "fetcher")),
	}
}

// URL returns the page address for a word
func (f *Fetcher) URL(word string) string {
	escaped := url.PathEscape(word)
	if !strings.Contains(f.urlTemplate, wordPlaceholder) {
		return strings.TrimSuffix(f.urlTemplate, "/") + "/" + escaped
	}
	return strings.ReplaceAll(f.urlTemplate, wordPlaceholder, escaped)
}

// Fetch returns the page markup for a word. Every failure, whether on
// the network or an HTTP error status, is logged once and returned as
// ErrUnavailable so callers can treat it like a missing word.
func (f *Fetcher) Fetch(ctx context.Context, word string) (string, error) {
	body, err := f.fetch(ctx, word)
	if err != nil {
		f.log.Warn("No access to the dictionary",
			zap.String("word", word),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return body, nil
}

func (f *Fetcher) fetch(ctx context.Context, word string) (string, error) {
	pageURL := f.URL(word)
	f.log.Debug("requesting page", zap.String("url", pageURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(data), nil
}
