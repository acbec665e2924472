package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastoclaro/gastoclaro/internal/common"
	"github.com/gastoclaro/gastoclaro/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testDraft() *model.ExpenseDraft {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &model.ExpenseDraft{
		Transcript:       "34 reais em 3 vezes no crédito",
		Description:      "34 reais em 3 vezes no crédito",
		Amount:           decimal.RequireFromString("34.00"),
		PaymentMethod:    model.PaymentCreditCard,
		CostCenter:       "Pessoal",
		Category:         "Outros",
		InstallmentCount: 3,
		Installments: []model.Installment{
			{Sequence: 1, Amount: decimal.RequireFromString("11.00"), DueDate: date},
			{Sequence: 2, Amount: decimal.RequireFromString("11.00"), DueDate: date.AddDate(0, 0, 30)},
			{Sequence: 3, Amount: decimal.RequireFromString("12.00"), DueDate: date.AddDate(0, 0, 60)},
		},
		Confidence: model.ConfidencePartial,
		Status:     model.StatusPending,
		Date:       date,
	}
}

func TestSaveAndGetDraft(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	draft := testDraft()
	require.NoError(t, store.SaveDraft(ctx, draft))
	require.NotEmpty(t, draft.ID, "save must assign an ID")

	got, err := store.GetDraft(ctx, draft.ID)
	require.NoError(t, err)

	assert.Equal(t, draft.Description, got.Description)
	assert.True(t, got.Amount.Equal(draft.Amount))
	assert.Equal(t, draft.PaymentMethod, got.PaymentMethod)
	assert.Equal(t, draft.Confidence, got.Confidence)
	require.Len(t, got.Installments, 3)
	assert.True(t, got.InstallmentTotal().Equal(got.Amount))
	assert.True(t, got.Installments[2].Amount.Equal(decimal.RequireFromString("12.00")))
}

func TestGetDraftNotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetDraft(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListDraftsByStatus(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	pending := testDraft()
	require.NoError(t, store.SaveDraft(ctx, pending))

	confirmed := testDraft()
	confirmed.Status = model.StatusConfirmed
	require.NoError(t, store.SaveDraft(ctx, confirmed))

	all, err := store.ListDrafts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := store.ListDrafts(ctx, model.StatusPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)
}

func TestUpdateDraft(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	draft := testDraft()
	require.NoError(t, store.SaveDraft(ctx, draft))

	draft.Description = "compra parcelada"
	draft.Status = model.StatusConfirmed
	draft.Amount = decimal.RequireFromString("36.00")
	draft.Installments = []model.Installment{
		{Sequence: 1, Amount: decimal.RequireFromString("12.00"), DueDate: draft.Date},
		{Sequence: 2, Amount: decimal.RequireFromString("12.00"), DueDate: draft.Date.AddDate(0, 0, 30)},
		{Sequence: 3, Amount: decimal.RequireFromString("12.00"), DueDate: draft.Date.AddDate(0, 0, 60)},
	}
	require.NoError(t, store.UpdateDraft(ctx, draft))

	got, err := store.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "compra parcelada", got.Description)
	assert.Equal(t, model.StatusConfirmed, got.Status)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("36.00")))
	require.Len(t, got.Installments, 3)
}

func TestUpdateDraftNotFound(t *testing.T) {
	store := newTestStorage(t)

	draft := testDraft()
	draft.ID = "missing"
	err := store.UpdateDraft(context.Background(), draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveDraftRejectsBrokenSumInvariant(t *testing.T) {
	store := newTestStorage(t)

	draft := testDraft()
	draft.Installments[2].Amount = decimal.RequireFromString("99.00")
	err := store.SaveDraft(context.Background(), draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestVocabularyCRUD(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddCostCenter(ctx, "Pessoal"))
	require.NoError(t, store.AddCostCenter(ctx, "Empresa 2"))
	require.NoError(t, store.AddCategory(ctx, "Insumos"))
	require.NoError(t, store.AddCategory(ctx, "Outros"))

	centers, err := store.GetCostCenters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pessoal", "Empresa 2"}, centers, "insertion order preserved")

	err = store.AddCostCenter(ctx, "Pessoal")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	require.NoError(t, store.RemoveCostCenter(ctx, "Empresa 2"))
	centers, err = store.GetCostCenters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pessoal"}, centers)

	err = store.RemoveCostCenter(ctx, "Empresa 2")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAddVocabularyRejectsCaseInsensitiveDuplicate(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddCostCenter(ctx, "Pessoal"))

	err := store.AddCostCenter(ctx, "pessoal")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	err = store.AddCostCenter(ctx, "PESSOAL")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	// The stored vocabulary must always assemble into a valid lexicon.
	lex, err := store.Lexicon(ctx)
	require.NoError(t, err)
	require.NoError(t, lex.Validate())
	assert.Equal(t, []string{"Pessoal"}, lex.CostCenters)
}

func TestLexiconFallsBackToDefaults(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	lex, err := store.Lexicon(ctx)
	require.NoError(t, err)
	require.NoError(t, lex.Validate())
	assert.Equal(t, "Pessoal", lex.DefaultCostCenter())
	assert.Equal(t, "Outros", lex.DefaultCategory())

	require.NoError(t, store.AddCostCenter(ctx, "Restaurante"))
	lex, err = store.Lexicon(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Restaurante"}, lex.CostCenters)
}
