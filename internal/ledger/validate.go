package ledger

import (
	"fmt"

	"github.com/fluxozen/fluxozen/internal/model"
)

// ValidationError reports a rejected manual entry with a per-field
// message suitable for showing next to the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDraft checks a transaction draft before it is committed.
// The first failing field wins.
func ValidateDraft(t model.Transaction) error {
	if t.Description == "" {
		return ValidationError{Field: "description", Message: "description is required"}
	}
	if !t.Amount.IsPositive() {
		return ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	if t.Date.IsZero() {
		return ValidationError{Field: "date", Message: "date is required"}
	}
	if !model.ValidTransactionType(t.Type) {
		return ValidationError{Field: "type", Message: fmt.Sprintf("unknown transaction type %q", t.Type)}
	}
	if t.CategoryID == "" {
		return ValidationError{Field: "category", Message: "category is required"}
	}
	if t.AccountID == "" {
		return ValidationError{Field: "account", Message: "account is required"}
	}
	if t.Installments != nil && t.Installments.Total < 2 {
		return ValidationError{Field: "installments", Message: "installment total must be at least 2"}
	}
	return nil
}
