package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gastoclaro/gastoclaro/internal/cli"
	"github.com/gastoclaro/gastoclaro/internal/engine"
)

func transcribeCmd() *cobra.Command {
	var (
		save     bool
		rawOnly  bool
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio note and extract the expense",
		Long: `Transcribe sends the audio file to the speech-to-text engine, then runs
the extraction pipeline over the transcript. Requires openai.api_key in the
config or the GASTOCLARO_OPENAI_API_KEY environment variable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			transcriber, err := initTranscriber()
			if err != nil {
				return err
			}

			transcript, err := transcriber.Transcribe(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.MicIcon + " " + cli.SubtleStyle.Render(transcript))
			if rawOnly {
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

			draft, err := engine.Process(transcript, lex, date)
			if err != nil {
				return err
			}

			printDraft(&draft)

			if save {
				if err := store.SaveDraft(ctx, &draft); err != nil {
					return fmt.Errorf("failed to save draft: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("despesa salva (%s)", draft.ID)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store the draft for review")
	cmd.Flags().BoolVar(&rawOnly, "raw", false, "print the transcript only, skip extraction")
	cmd.Flags().StringVar(&dateFlag, "date", "", "expense date (YYYY-MM-DD, default today)")
	return cmd
}
