package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gastoclaro/gastoclaro/internal/service"
	"github.com/gastoclaro/gastoclaro/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Review and confirm pending expenses interactively",
		Long: `Review opens an interactive screen listing every pending expense. Each
draft can be edited and confirmed; unrecognized ones open as an empty form to
fill in by hand.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return withStorage(c.Context(), func(_ context.Context, store service.Storage) error {
				if err := tui.Run(store); err != nil {
					return fmt.Errorf("review failed: %w", err)
				}
				return nil
			})
		},
	}
}
