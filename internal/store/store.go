// Package store is the persistence boundary for the ledger. The core
// engine talks to a Store and treats each call as atomic: in-memory
// state is updated only after the call succeeds. Expected business
// failures come back as errors, never panics.
package store

import (
	"errors"

	"github.com/fluxozen/fluxozen/internal/model"
)

// ErrNotFound is returned by update/delete calls whose target id does
// not exist.
var ErrNotFound = errors.New("record not found")

// Store loads and mutates the persisted ledger. InsertTransactions is
// a batch: either every transaction commits or none do.
type Store interface {
	Load() (*model.Ledger, error)

	InsertAccount(a model.Account) error
	UpdateAccount(a model.Account) error
	DeleteAccount(id string) error

	InsertCategory(c model.Category) error
	UpdateCategory(c model.Category) error
	DeleteCategory(id string) error

	InsertTransaction(t model.Transaction) error
	InsertTransactions(ts []model.Transaction) error
	UpdateTransaction(t model.Transaction) error
	DeleteTransaction(id string) error
}
