package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gastoclaro/gastoclaro/internal/cli"
	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/service"
)

// vocabAccess abstracts the two configured vocabularies so the centers and
// categories commands share one implementation.
type vocabAccess struct {
	singular string
	plural   string
	list     func(context.Context, service.Storage) ([]string, error)
	add      func(context.Context, service.Storage, string) error
	remove   func(context.Context, service.Storage, string) error
}

func centersCmd() *cobra.Command {
	return vocabCmd("centers", vocabAccess{
		singular: "centro de custo",
		plural:   "Centros de custo",
		list: func(ctx context.Context, s service.Storage) ([]string, error) {
			return s.GetCostCenters(ctx)
		},
		add: func(ctx context.Context, s service.Storage, name string) error {
			return s.AddCostCenter(ctx, name)
		},
		remove: func(ctx context.Context, s service.Storage, name string) error {
			return s.RemoveCostCenter(ctx, name)
		},
	})
}

func categoriesCmd() *cobra.Command {
	return vocabCmd("categories", vocabAccess{
		singular: "categoria",
		plural:   "Categorias",
		list: func(ctx context.Context, s service.Storage) ([]string, error) {
			return s.GetCategories(ctx)
		},
		add: func(ctx context.Context, s service.Storage, name string) error {
			return s.AddCategory(ctx, name)
		},
		remove: func(ctx context.Context, s service.Storage, name string) error {
			return s.RemoveCategory(ctx, name)
		},
	})
}

func vocabCmd(use string, access vocabAccess) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Manage %s vocabulary", access.singular),
		Long: fmt.Sprintf(`Manage the %s vocabulary the extraction pipeline matches against.
Entries are matched in the transcript ignoring case and accents; the first
configured entry is the default when nothing matches.`, access.singular),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List configured %ss", access.singular),
		RunE: func(c *cobra.Command, _ []string) error {
			return withStorage(c.Context(), func(ctx context.Context, store service.Storage) error {
				names, err := access.list(ctx, store)
				if err != nil {
					return err
				}
				if len(names) == 0 {
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Nenhum %s configurado; usando padrões.", access.singular)))
					return nil
				}
				fmt.Println(cli.FormatTitle(access.plural))
				for i, name := range names {
					marker := "  "
					if i == 0 {
						marker = cli.SubtleStyle.Render("* ")
					}
					fmt.Println(marker + name)
				}
				fmt.Println(cli.SubtleStyle.Render("* padrão"))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: fmt.Sprintf("Add a %s", access.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("%w: name cannot be empty", common.ErrInvalidInput)
			}
			return withStorage(c.Context(), func(ctx context.Context, store service.Storage) error {
				if err := access.add(ctx, store, name); err != nil {
					if errors.Is(err, common.ErrDuplicateEntry) {
						return fmt.Errorf("%s %q already exists", access.singular, name)
					}
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %q adicionado", access.singular, name)))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: fmt.Sprintf("Remove a %s", access.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withStorage(c.Context(), func(ctx context.Context, store service.Storage) error {
				if err := access.remove(ctx, store, args[0]); err != nil {
					if errors.Is(err, common.ErrNotFound) {
						return fmt.Errorf("%s %q not found", access.singular, args[0])
					}
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %q removido", access.singular, args[0])))
				return nil
			})
		},
	})

	return cmd
}

// withStorage opens storage, runs fn and closes it.
func withStorage(ctx context.Context, fn func(context.Context, service.Storage) error) error {
	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()
	return fn(ctx, store)
}
