package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gastoclaro/gastoclaro/internal/cli"
	"github.com/gastoclaro/gastoclaro/internal/engine"
	"github.com/gastoclaro/gastoclaro/internal/model"
)

func importCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Process a batch of transcripts from a text file",
		Long: `Import reads one transcript per line, runs the extraction pipeline over
each and stores every resulting draft. Blank lines are skipped. A summary of
recognition confidence is printed at the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			transcripts, err := readTranscripts(args[0])
			if err != nil {
				return err
			}
			if len(transcripts) == 0 {
				fmt.Println(cli.FormatWarning("no transcripts found in file"))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			lex, err := store.Lexicon(ctx)
			if err != nil {
				return fmt.Errorf("failed to load vocabularies: %w", err)
			}

			bar := progressbar.NewOptions(len(transcripts),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[green][bold]Processing transcripts...[reset]"),
			)

			tally := map[model.Confidence]int{}
			for _, transcript := range transcripts {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				draft, err := engine.Process(transcript, lex, date)
				if err != nil {
					return fmt.Errorf("failed to process %q: %w", transcript, err)
				}
				if err := store.SaveDraft(ctx, &draft); err != nil {
					return fmt.Errorf("failed to save draft: %w", err)
				}
				tally[draft.Confidence]++
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			summary := fmt.Sprintf("%d despesas importadas: %d alta, %d parcial, %d não reconhecidas",
				len(transcripts),
				tally[model.ConfidenceHigh],
				tally[model.ConfidencePartial],
				tally[model.ConfidenceFallback])
			fmt.Println(cli.FormatSuccess(summary))
			if tally[model.ConfidenceFallback] > 0 {
				fmt.Println(cli.FormatWarning("run 'gastoclaro review' to complete the unrecognized ones"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "expense date for the batch (YYYY-MM-DD, default today)")
	return cmd
}

func readTranscripts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var transcripts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			transcripts = append(transcripts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return transcripts, nil
}
