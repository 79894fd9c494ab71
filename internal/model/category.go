package model

// Category labels transactions as a kind of income or expense.
type Category struct {
	ID      string
	Name    string
	Type    TransactionType
	Color   string
	IconKey string
}
