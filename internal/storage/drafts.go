package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/model"
)

// SaveDraft writes a draft and its installments in one transaction. A blank
// draft ID is assigned on save.
func (s *SQLiteStorage) SaveDraft(ctx context.Context, draft *model.ExpenseDraft) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDraft(draft); err != nil {
		return err
	}

	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.Status == "" {
		draft.Status = model.StatusPending
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO expenses
			(id, transcript, description, amount, payment_method, cost_center,
			 category, installment_count, confidence, status, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		draft.ID, draft.Transcript, draft.Description, draft.Amount.StringFixed(2),
		string(draft.PaymentMethod), draft.CostCenter, draft.Category,
		draft.InstallmentCount, string(draft.Confidence), string(draft.Status),
		draft.Date); err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertInstallments(ctx, tx, draft.ID, draft.Installments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draft: %w", err)
	}

	slog.Debug("saved draft",
		"id", draft.ID,
		"amount", draft.Amount.StringFixed(2),
		"confidence", draft.Confidence)
	return nil
}

// GetDraft returns a stored draft by ID.
func (s *SQLiteStorage) GetDraft(ctx context.Context, id string) (*model.ExpenseDraft, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, transcript, description, amount, payment_method, cost_center,
		       category, installment_count, confidence, status, date
		FROM expenses
		WHERE id = ?`, id)

	draft, err := scanDraft(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: expense %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if draft.Installments, err = s.loadInstallments(ctx, draft.ID); err != nil {
		return nil, err
	}
	return draft, nil
}

// ListDrafts returns stored drafts newest-first, optionally filtered by
// status. An empty status returns all drafts.
func (s *SQLiteStorage) ListDrafts(ctx context.Context, status model.DraftStatus) ([]model.ExpenseDraft, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, transcript, description, amount, payment_method, cost_center,
		       category, installment_count, confidence, status, date
		FROM expenses`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY date DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var drafts []model.ExpenseDraft
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	for i := range drafts {
		if drafts[i].Installments, err = s.loadInstallments(ctx, drafts[i].ID); err != nil {
			return nil, err
		}
	}

	slog.Debug("retrieved drafts", "count", len(drafts), "status", status)
	return drafts, nil
}

// UpdateDraft rewrites an edited draft and replaces its installments.
func (s *SQLiteStorage) UpdateDraft(ctx context.Context, draft *model.ExpenseDraft) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(draft.ID, "draft.ID"); err != nil {
		return err
	}
	if err := validateDraft(draft); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE expenses
		SET description = ?, amount = ?, payment_method = ?, cost_center = ?,
		    category = ?, installment_count = ?, confidence = ?, status = ?, date = ?
		WHERE id = ?`,
		draft.Description, draft.Amount.StringFixed(2), string(draft.PaymentMethod),
		draft.CostCenter, draft.Category, draft.InstallmentCount,
		string(draft.Confidence), string(draft.Status), draft.Date, draft.ID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: expense %s", common.ErrNotFound, draft.ID)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM installments WHERE expense_id = ?`, draft.ID); err != nil {
		return fmt.Errorf("failed to clear installments: %w", err)
	}
	if err := insertInstallments(ctx, tx, draft.ID, draft.Installments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draft update: %w", err)
	}

	slog.Debug("updated draft", "id", draft.ID, "status", draft.Status)
	return nil
}

func insertInstallments(ctx context.Context, tx *sql.Tx, expenseID string, installments []model.Installment) error {
	for _, in := range installments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO installments (expense_id, sequence, amount, due_date)
			VALUES (?, ?, ?, ?)`,
			expenseID, in.Sequence, in.Amount.StringFixed(2), in.DueDate); err != nil {
			return fmt.Errorf("failed to insert installment %d: %w", in.Sequence, err)
		}
	}
	return nil
}

func (s *SQLiteStorage) loadInstallments(ctx context.Context, expenseID string) ([]model.Installment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sequence, amount, due_date
		FROM installments
		WHERE expense_id = ?
		ORDER BY sequence`, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		var (
			in        model.Installment
			amountStr string
			due       time.Time
		)
		if err := rows.Scan(&in.Sequence, &amountStr, &due); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		if in.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("corrupt installment amount %q: %w", amountStr, err)
		}
		in.DueDate = due
		installments = append(installments, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installments: %w", err)
	}
	return installments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (*model.ExpenseDraft, error) {
	var (
		draft      model.ExpenseDraft
		amountStr  string
		method     string
		confidence string
		status     string
	)
	err := row.Scan(&draft.ID, &draft.Transcript, &draft.Description, &amountStr,
		&method, &draft.CostCenter, &draft.Category, &draft.InstallmentCount,
		&confidence, &status, &draft.Date)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense: %w", err)
	}

	if draft.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("corrupt expense amount %q: %w", amountStr, err)
	}
	if draft.PaymentMethod, err = model.ParsePaymentMethod(method); err != nil {
		return nil, fmt.Errorf("corrupt expense row: %w", err)
	}
	draft.Confidence = model.Confidence(confidence)
	draft.Status = model.DraftStatus(status)
	return &draft, nil
}
