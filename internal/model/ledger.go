package model

// Ledger is the combined account/category/transaction set for one
// tenant. It is plain data: the aggregation and anomaly packages read
// snapshots of it and own no state of their own.
type Ledger struct {
	Accounts     []Account
	Categories   []Category
	Transactions []Transaction
}

// CategoryByID returns the category with the given id.
func (l *Ledger) CategoryByID(id string) (Category, bool) {
	for _, c := range l.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// AccountByID returns the account with the given id.
func (l *Ledger) AccountByID(id string) (Account, bool) {
	for _, a := range l.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// CategoryInUse reports whether any transaction references the
// category.
func (l *Ledger) CategoryInUse(categoryID string) bool {
	for _, t := range l.Transactions {
		if t.CategoryID == categoryID {
			return true
		}
	}
	return false
}
