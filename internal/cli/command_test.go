package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"codeberg.org/snonux/wordcard/internal/dictionary"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "wordcard [words...]" {
		t.Errorf("Expected Use to be 'wordcard [words...]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Anki deck builder") {
		t.Errorf("Expected Short description to contain 'Anki deck builder'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"verbose", true},
		{"path", false},
		{"deck", false},
		{"csv", false},
		{"batch", false},
		{"url", false},
		{"user-agent", false},
		{"timeout", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestRootCommandArgs(t *testing.T) {
	tests := []struct {
		name    string
		batch   string
		args    []string
		wantErr bool
	}{
		{"words given", "", []string{"run", "tool"}, false},
		{"batch only", "words.txt", nil, false},
		{"nothing to do", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			cmd := CreateRootCommand(flags)
			if tt.batch != "" {
				if err := cmd.Flags().Set("batch", tt.batch); err != nil {
					t.Fatalf("Failed to set batch flag: %v", err)
				}
			}

			err := cmd.Args(cmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Args() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	timeoutFlag := cmd.Flags().Lookup("timeout")
	if timeoutFlag == nil {
		t.Fatal("timeout flag not found")
	}
	if timeoutFlag.DefValue != "10s" {
		t.Errorf("Expected default timeout to be 10s, got %s", timeoutFlag.DefValue)
	}

	urlFlag := cmd.Flags().Lookup("url")
	if urlFlag == nil {
		t.Fatal("url flag not found")
	}
	if urlFlag.DefValue != dictionary.DefaultURLTemplate {
		t.Errorf("Expected default url to be %s, got %s", dictionary.DefaultURLTemplate, urlFlag.DefValue)
	}

	// The deck path has no default, it comes from the stored settings
	pathFlag := cmd.Flags().Lookup("path")
	if pathFlag == nil || pathFlag.DefValue != "" {
		t.Errorf("Expected path flag without default")
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantPath  string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `deck:
  path: /test/decks
  name: Words
dictionary:
  timeout: 3s`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			wantPath: "/test/decks",
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				t.Setenv("HOME", t.TempDir())
				return ""
			},
			wantPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			InitConfig(tt.setupFunc(t))

			if got := DeckSettings().Path; got != tt.wantPath {
				t.Errorf("DeckSettings().Path = %q, want %q", got, tt.wantPath)
			}

			// Test environment variable prefix
			t.Setenv("WORDCARD_TEST_VAR", "test-value")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestNestedKeysFromEnvironment(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WORDCARD_DECK_PATH", "/from/env")
	t.Setenv("WORDCARD_DECK_NAME", "EnvDeck")
	t.Setenv("WORDCARD_DICTIONARY_TIMEOUT", "7s")

	InitConfig("")

	deck := DeckSettings()
	if deck.Path != "/from/env" {
		t.Errorf("DeckSettings().Path = %q, want /from/env", deck.Path)
	}
	if deck.Deck != "EnvDeck" {
		t.Errorf("DeckSettings().Deck = %q, want EnvDeck", deck.Deck)
	}
	if got := FetcherOptions().Timeout; got != 7*time.Second {
		t.Errorf("FetcherOptions().Timeout = %v, want 7s", got)
	}
}

func TestConfigFileValues(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "wordcard.yaml")
	content := `deck:
  name: Words
dictionary:
  timeout: 3s
  user_agent: test-agent`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	InitConfig(cfgPath)

	if got := DeckSettings().Deck; got != "Words" {
		t.Errorf("Deck = %q, want Words", got)
	}

	opts := FetcherOptions()
	if opts.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", opts.Timeout)
	}
	if opts.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q, want test-agent", opts.UserAgent)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("path", "/test/decks")
	cmd.Flags().Set("deck", "Words")
	cmd.Flags().Set("timeout", "5s")

	bindFlagsToViper(cmd)

	// Test that values are bound
	deck := DeckSettings()
	if deck.Path != "/test/decks" {
		t.Errorf("Expected deck.path to be /test/decks, got %s", deck.Path)
	}

	if deck.Deck != "Words" {
		t.Errorf("Expected deck.name to be Words, got %s", deck.Deck)
	}

	opts := FetcherOptions()
	if opts.Timeout != 5*time.Second {
		t.Errorf("Expected dictionary.timeout to be 5s, got %v", opts.Timeout)
	}

	if opts.URLTemplate != dictionary.DefaultURLTemplate {
		t.Errorf("Expected default url template, got %s", opts.URLTemplate)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(false)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug logging should be off by default")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("Warnings should be logged")
	}

	logger, err = NewLogger(true)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug logging should be on when verbose")
	}
}
