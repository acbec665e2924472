package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/lexicon"
	"github.com/gastoclaro/gastoclaro/internal/model"
)

// GetCostCenters returns the configured cost centers in insertion order. The
// first entry is the user's default.
func (s *SQLiteStorage) GetCostCenters(ctx context.Context) ([]string, error) {
	return s.listVocabulary(ctx, "cost_centers")
}

// AddCostCenter appends a cost center to the user's configuration.
func (s *SQLiteStorage) AddCostCenter(ctx context.Context, name string) error {
	return s.addVocabulary(ctx, "cost_centers", name)
}

// RemoveCostCenter deletes a cost center from the user's configuration.
func (s *SQLiteStorage) RemoveCostCenter(ctx context.Context, name string) error {
	return s.removeVocabulary(ctx, "cost_centers", name)
}

// GetCategories returns the configured categories in insertion order.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]string, error) {
	return s.listVocabulary(ctx, "categories")
}

// AddCategory appends a category to the user's configuration.
func (s *SQLiteStorage) AddCategory(ctx context.Context, name string) error {
	return s.addVocabulary(ctx, "categories", name)
}

// RemoveCategory deletes a category from the user's configuration.
func (s *SQLiteStorage) RemoveCategory(ctx context.Context, name string) error {
	return s.removeVocabulary(ctx, "categories", name)
}

// Lexicon assembles the user's vocabularies into an immutable lexicon value,
// substituting the built-in defaults for anything not configured.
func (s *SQLiteStorage) Lexicon(ctx context.Context) (model.Lexicon, error) {
	costCenters, err := s.GetCostCenters(ctx)
	if err != nil {
		return model.Lexicon{}, err
	}
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return model.Lexicon{}, err
	}
	return lexicon.New(costCenters, categories), nil
}

func (s *SQLiteStorage) listVocabulary(ctx context.Context, table string) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT name FROM %s ORDER BY position`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}
	return names, nil
}

func (s *SQLiteStorage) addVocabulary(ctx context.Context, table, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	// The lexicon treats entries as unique ignoring case, so the check here
	// must be stricter than the case-sensitive PRIMARY KEY. A "pessoal" row
	// next to "Pessoal" would make every later Lexicon() call invalid.
	existing, err := s.listVocabulary(ctx, table)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if strings.EqualFold(e, name) {
			return fmt.Errorf("%w: %s %q", common.ErrDuplicateEntry, table, name)
		}
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (name, position)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM %s))`, table, table),
		name)
	if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s %q", common.ErrDuplicateEntry, table, name)
	}
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	slog.Info("added vocabulary entry", "table", table, "name", name)
	return nil
}

func (s *SQLiteStorage) removeVocabulary(ctx context.Context, table, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, table), name)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %q", common.ErrNotFound, table, name)
	}

	slog.Info("removed vocabulary entry", "table", table, "name", name)
	return nil
}
