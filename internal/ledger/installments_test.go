package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxozen/fluxozen/internal/model"
	"github.com/fluxozen/fluxozen/internal/store"
)

func TestExpandInstallments(t *testing.T) {
	base := draft("Notebook")
	base.Date = model.Date(2025, 11, 15)
	base.Amount = dec("400")

	drafts, err := ExpandInstallments(base, 3)
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	assert.Equal(t, "Notebook (1/3)", drafts[0].Description)
	assert.Equal(t, "Notebook (2/3)", drafts[1].Description)
	assert.Equal(t, "Notebook (3/3)", drafts[2].Description)

	assert.Equal(t, "2025-11-15", drafts[0].ISODate())
	assert.Equal(t, "2025-12-15", drafts[1].ISODate())
	assert.Equal(t, "2026-01-15", drafts[2].ISODate())

	for i, d := range drafts {
		assert.Empty(t, d.ID)
		assert.True(t, d.Amount.Equal(dec("400")))
		require.NotNil(t, d.Installments)
		assert.Equal(t, i+1, d.Installments.Current)
		assert.Equal(t, 3, d.Installments.Total)
	}
}

func TestExpandInstallments_RejectsShortSeries(t *testing.T) {
	_, err := ExpandInstallments(draft("Notebook"), 1)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "installments", verr.Field)
}

func TestExpandInstallments_CommitsAsOneBatch(t *testing.T) {
	svc := newService(t, store.NewMemory())

	base := draft("Notebook")
	base.Date = model.Date(2025, 11, 15)
	drafts, err := ExpandInstallments(base, 3)
	require.NoError(t, err)

	committed, err := svc.ImportTransactions(drafts)
	require.NoError(t, err)
	assert.Len(t, committed, 3)
	assert.Len(t, svc.Snapshot().Transactions, 3)
}
