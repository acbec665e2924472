package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gastoclaro/gastoclaro/internal/cli"
	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/model"
	"github.com/gastoclaro/gastoclaro/internal/service"
)

func expensesCmd() *cobra.Command {
	var (
		statusFlag     string
		confidenceFlag string
	)

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List stored expense drafts",
		RunE: func(c *cobra.Command, _ []string) error {
			status, err := parseStatusFlag(statusFlag)
			if err != nil {
				return err
			}
			confidence, err := parseConfidenceFlag(confidenceFlag)
			if err != nil {
				return err
			}

			return withStorage(c.Context(), func(ctx context.Context, store service.Storage) error {
				drafts, err := store.ListDrafts(ctx, status)
				if err != nil {
					return err
				}
				if confidence != "" {
					filtered := drafts[:0]
					for _, d := range drafts {
						if d.Confidence == confidence {
							filtered = append(filtered, d)
						}
					}
					drafts = filtered
				}

				if len(drafts) == 0 {
					fmt.Println(cli.InfoStyle.Render("Nenhuma despesa encontrada."))
					return nil
				}
				printDraftRows(drafts)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "filter by status (pending, confirmed)")
	cmd.Flags().StringVar(&confidenceFlag, "confidence", "", "filter by confidence (high, partial, fallback)")
	return cmd
}

func parseStatusFlag(value string) (model.DraftStatus, error) {
	switch model.DraftStatus(value) {
	case "", model.StatusPending, model.StatusConfirmed:
		return model.DraftStatus(value), nil
	default:
		return "", fmt.Errorf("%w: invalid status %q", common.ErrInvalidInput, value)
	}
}

func parseConfidenceFlag(value string) (model.Confidence, error) {
	switch model.Confidence(value) {
	case "", model.ConfidenceHigh, model.ConfidencePartial, model.ConfidenceFallback:
		return model.Confidence(value), nil
	default:
		return "", fmt.Errorf("%w: invalid confidence %q", common.ErrInvalidInput, value)
	}
}
