// Package reconcile maps parsed statement candidates onto ledger
// transactions: sign decides the type, the imported category (with
// fallbacks) decides the category, and the caller's target account
// receives every row.
package reconcile

import (
	"errors"

	"github.com/fluxozen/fluxozen/internal/model"
)

// ImportedCategoryName is the category label under which statement
// imports land. One such category per transaction type is expected to
// exist before reconciliation; MissingImportCategories tells the
// caller which ones to create.
const ImportedCategoryName = "Statement Import"

// ImportedTag marks transactions created by an import.
const ImportedTag = "imported"

// ErrNoCategories is returned when the ledger has no categories at
// all, leaving nothing to assign.
var ErrNoCategories = errors.New("ledger has no categories")

// MissingImportCategories returns drafts (without IDs) for the
// imported categories absent from the given set, one per transaction
// type. An empty result means reconciliation can proceed.
func MissingImportCategories(categories []model.Category) []model.Category {
	var missing []model.Category
	for _, txType := range []model.TransactionType{model.TypeExpense, model.TypeIncome} {
		if _, ok := findImportCategory(categories, txType); !ok {
			missing = append(missing, model.Category{
				Name:    ImportedCategoryName,
				Type:    txType,
				Color:   "#64748b",
				IconKey: "FileSpreadsheet",
			})
		}
	}
	return missing
}

// Reconcile converts candidates into transaction drafts bound to the
// target account. Negative candidate amounts become expenses with the
// magnitude stored; non-negative become income. Drafts carry no IDs;
// the ledger assigns them when the batch commits, and the batch must
// commit all-or-nothing.
func Reconcile(candidates []model.Candidate, targetAccountID string, categories []model.Category) ([]model.Transaction, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	transactions := make([]model.Transaction, 0, len(candidates))
	for _, c := range candidates {
		txType := model.TypeIncome
		amount := c.Amount
		if c.Amount.IsNegative() {
			txType = model.TypeExpense
			amount = c.Amount.Neg()
		}

		transactions = append(transactions, model.Transaction{
			Description: c.Description,
			Amount:      amount,
			Date:        c.Date,
			Type:        txType,
			CategoryID:  categoryFor(categories, txType),
			AccountID:   targetAccountID,
			IsRecurring: false,
			Tags:        []string{ImportedTag},
			IsImported:  true,
		})
	}
	return transactions, nil
}

// categoryFor picks the imported category of the matching type,
// falling back to any category of the type, then to the first
// category in the system. The category id is never left unset.
func categoryFor(categories []model.Category, txType model.TransactionType) string {
	if c, ok := findImportCategory(categories, txType); ok {
		return c.ID
	}
	for _, c := range categories {
		if c.Type == txType {
			return c.ID
		}
	}
	return categories[0].ID
}

func findImportCategory(categories []model.Category, txType model.TransactionType) (model.Category, bool) {
	for _, c := range categories {
		if c.Name == ImportedCategoryName && c.Type == txType {
			return c, true
		}
	}
	return model.Category{}, false
}
