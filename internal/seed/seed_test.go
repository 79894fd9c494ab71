package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxozen/fluxozen/internal/anomaly"
	"github.com/fluxozen/fluxozen/internal/model"
	"github.com/fluxozen/fluxozen/internal/store"
)

func TestApply(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, Apply(st))

	ledger, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, ledger.Accounts, 5)
	assert.Len(t, ledger.Categories, 14)
}

func TestApply_RefusesNonEmptyLedger(t *testing.T) {
	st := store.NewMemoryWith(model.Ledger{
		Accounts: []model.Account{{ID: "acc_main", Name: "Main", Type: model.AccountChecking}},
	})
	assert.Error(t, Apply(st))
}

func TestSeedMatchesAnomalyRules(t *testing.T) {
	rules := anomaly.DefaultRules()

	ids := map[string]bool{}
	for _, a := range Accounts() {
		ids[a.ID] = true
	}
	for _, id := range rules.CorporateAccountIDs {
		assert.True(t, ids[id], "corporate account %s must exist in the seed", id)
	}

	found := false
	for _, c := range Categories() {
		if c.Name == rules.CatchAllCategory {
			found = true
			assert.Equal(t, model.TypeExpense, c.Type)
		}
	}
	assert.True(t, found, "catch-all category must exist in the seed")
}

func TestAccountTypesValid(t *testing.T) {
	for _, a := range Accounts() {
		assert.True(t, model.ValidAccountType(a.Type), "account %s", a.ID)
	}
	for _, c := range Categories() {
		assert.True(t, model.ValidTransactionType(c.Type), "category %s", c.ID)
	}
}
