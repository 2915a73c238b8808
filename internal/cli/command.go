package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordcard/internal"
	"codeberg.org/snonux/wordcard/internal/dictionary"
	"codeberg.org/snonux/wordcard/internal/settings"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordcard [words...]",
		Short: "English vocabulary Anki deck builder",
		Long: `wordcard looks English words up in the Cambridge dictionary and builds
an Anki deck from the definitions and examples you pick.

For every word you choose the definitions to keep, then the example
sentences for each of them. The deck path and name are remembered for
the next run.

Examples:
  wordcard --path ~/decks run tool     # Build a deck from two words
  wordcard "give up"                   # Reuse the remembered deck path
  wordcard --batch words.txt --csv     # Words from a file, CSV output`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && flags.BatchFile == "" {
				return fmt.Errorf("requires at least one word or --batch")
			}
			return nil
		},
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordcard.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log diagnostics to stderr")

	// Deck flags
	cmd.Flags().StringVarP(&flags.Path, "path", "p", "", "Existing directory to save the deck in (remembered)")
	cmd.Flags().StringVarP(&flags.Deck, "deck", "d", "", "Deck name (remembered, default \""+settings.DefaultDeckName+"\")")
	cmd.Flags().BoolVar(&flags.CSV, "csv", false, "Export CSV instead of an .apkg package")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Read more words from file (one per line)")

	// Dictionary flags
	cmd.Flags().StringVar(&flags.URLTemplate, "url", flags.URLTemplate, "Dictionary URL template, {word} is replaced by the word")
	cmd.Flags().StringVar(&flags.UserAgent, "user-agent", flags.UserAgent, "User-Agent header sent to the dictionary")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Dictionary request timeout")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("deck.path", cmd.Flags().Lookup("path"))
	viper.BindPFlag("deck.name", cmd.Flags().Lookup("deck"))
	viper.BindPFlag("dictionary.url", cmd.Flags().Lookup("url"))
	viper.BindPFlag("dictionary.user_agent", cmd.Flags().Lookup("user-agent"))
	viper.BindPFlag("dictionary.timeout", cmd.Flags().Lookup("timeout"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordcard" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordcard")
	}

	// Environment variables, deck.path is read from WORDCARD_DECK_PATH
	viper.SetEnvPrefix("WORDCARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// FetcherOptions returns the dictionary settings after flags, config file
// and environment were merged
func FetcherOptions() *dictionary.FetcherOptions {
	return &dictionary.FetcherOptions{
		URLTemplate: viper.GetString("dictionary.url"),
		UserAgent:   viper.GetString("dictionary.user_agent"),
		Timeout:     viper.GetDuration("dictionary.timeout"),
	}
}

// DeckSettings returns the deck path and name given by flag, config file
// or environment. Empty values are resolved later from the stored settings.
func DeckSettings() settings.Settings {
	return settings.Settings{
		Path: viper.GetString("deck.path"),
		Deck: viper.GetString("deck.name"),
	}
}
