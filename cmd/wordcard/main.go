package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wordcard/internal/batch"
	"codeberg.org/snonux/wordcard/internal/cli"
	"codeberg.org/snonux/wordcard/internal/dictionary"
	"codeberg.org/snonux/wordcard/internal/processor"
	"codeberg.org/snonux/wordcard/internal/prompt"
	"codeberg.org/snonux/wordcard/internal/settings"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logger, err := cli.NewLogger(flags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	words := args
	if flags.BatchFile != "" {
		more, err := batch.ReadBatchFile(flags.BatchFile)
		if err != nil {
			return err
		}
		words = append(words, more...)
	}

	envFile, err := settings.DefaultFile()
	if err != nil {
		return err
	}

	fetcher := dictionary.NewFetcher(cli.FetcherOptions(), logger)
	proc := processor.NewProcessor(
		dictionary.New(fetcher, logger),
		prompt.NewCheckbox(os.Stdin, cmd.OutOrStdout()),
		settings.NewStore(envFile),
		cmd.OutOrStdout(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = proc.Run(ctx, words, processor.Options{
		Settings: cli.DeckSettings(),
		CSV:      flags.CSV,
	})
	if errors.Is(err, processor.ErrNoNotes) {
		fmt.Fprintln(cmd.OutOrStdout(), "No notes were created. Exiting.")
		return nil
	}
	return err
}
