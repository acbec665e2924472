package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gastoclaro/gastoclaro/internal/cli"
	"github.com/gastoclaro/gastoclaro/internal/engine"
)

func processCmd() *cobra.Command {
	var (
		save     bool
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "process \"transcript\"",
		Short: "Extract a structured expense from a transcript",
		Long: `Process runs the extraction pipeline over a Portuguese transcript and
prints the resulting expense draft. With --save the draft is also stored for
later review.

Example:
  gastoclaro process "gastei 150 reais no cartão de crédito em 3 vezes"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			transcript := strings.TrimSpace(args[0])
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
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
	cmd.Flags().StringVar(&dateFlag, "date", "", "expense date (YYYY-MM-DD, default today)")
	return cmd
}
