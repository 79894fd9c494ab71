package ledger

import (
	"fmt"
	"time"

	"github.com/fluxozen/fluxozen/internal/model"
)

// ExpandInstallments turns a base draft into one draft per
// installment, dated on consecutive months starting at the base date.
// Each draft carries the per-installment amount as given, a numbered
// description suffix, and its position in the series. The expansion is
// pure; callers commit the result through ImportTransactions so the
// series lands as a single batch.
func ExpandInstallments(base model.Transaction, total int) ([]model.Transaction, error) {
	if total < 2 {
		return nil, ValidationError{Field: "installments", Message: "installment total must be at least 2"}
	}
	if err := ValidateDraft(base); err != nil {
		return nil, err
	}

	drafts := make([]model.Transaction, total)
	for i := 0; i < total; i++ {
		draft := base
		draft.ID = ""
		draft.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i+1, total)
		draft.Date = addMonths(base.Date, i)
		draft.Installments = &model.Installments{Current: i + 1, Total: total}
		drafts[i] = draft
	}
	return drafts, nil
}

func addMonths(t time.Time, months int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(months), t.Day(), 0, 0, 0, 0, time.UTC)
}
