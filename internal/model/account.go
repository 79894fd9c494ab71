package model

import "github.com/shopspring/decimal"

// AccountType classifies ledger accounts.
type AccountType string

const (
	AccountChecking   AccountType = "CHECKING"
	AccountCreditCard AccountType = "CREDIT_CARD"
	AccountCash       AccountType = "CASH"
	AccountInvestment AccountType = "INVESTMENT"
)

// ValidAccountType reports whether t is a known account type.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountChecking, AccountCreditCard, AccountCash, AccountInvestment:
		return true
	}
	return false
}

// Account is a money holding (or, for credit cards, a payable).
// Its balance is always derived from InitialBalance plus transactions,
// never stored.
type Account struct {
	ID             string
	Name           string
	Institution    string // bank name, optional
	Type           AccountType
	ColorTag       string // hex code for the UI badge
	InitialBalance decimal.Decimal
}
