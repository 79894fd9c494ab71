// Package ledger owns the in-memory ledger and its mutation boundary.
// Reads are served from the in-memory state; every mutation goes to
// the persistence store first and is applied locally only after the
// store confirms, so a failed call leaves the ledger untouched.
package ledger

import (
	"fmt"

	"github.com/fluxozen/fluxozen/internal/id"
	"github.com/fluxozen/fluxozen/internal/model"
	"github.com/fluxozen/fluxozen/internal/store"
)

// CategoryInUseError reports an attempt to delete a category that
// still has linked transactions. It is an expected business result,
// not a programmer error.
type CategoryInUseError struct {
	CategoryID string
}

func (e CategoryInUseError) Error() string {
	return fmt.Sprintf("category %s has linked transactions and cannot be deleted", e.CategoryID)
}

// Service provides ledger operations backed by a Store.
type Service struct {
	store  store.Store
	ledger *model.Ledger
}

// NewService loads the ledger from the store.
func NewService(st store.Store) (*Service, error) {
	ledger, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return &Service{store: st, ledger: ledger}, nil
}

// Snapshot returns a copy of the current ledger for the read-only
// consumers (aggregator, anomaly scan, export).
func (s *Service) Snapshot() model.Ledger {
	return model.Ledger{
		Accounts:     append([]model.Account(nil), s.ledger.Accounts...),
		Categories:   append([]model.Category(nil), s.ledger.Categories...),
		Transactions: append([]model.Transaction(nil), s.ledger.Transactions...),
	}
}

// AddTransaction validates a draft, assigns it an id, and commits it.
func (s *Service) AddTransaction(draft model.Transaction) (model.Transaction, error) {
	if err := ValidateDraft(draft); err != nil {
		return model.Transaction{}, err
	}

	draft.ID = id.New()
	if err := s.store.InsertTransaction(draft); err != nil {
		return model.Transaction{}, fmt.Errorf("inserting transaction: %w", err)
	}
	s.ledger.Transactions = append(s.ledger.Transactions, draft)
	return draft, nil
}

// ImportTransactions commits a batch of drafts as one mutation. All
// drafts are validated and assigned ids up front; the store call is
// all-or-nothing, so either every transaction lands or none do.
func (s *Service) ImportTransactions(drafts []model.Transaction) ([]model.Transaction, error) {
	committed := make([]model.Transaction, len(drafts))
	for i, draft := range drafts {
		if err := ValidateDraft(draft); err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
		draft.ID = id.New()
		committed[i] = draft
	}

	if err := s.store.InsertTransactions(committed); err != nil {
		return nil, fmt.Errorf("inserting batch: %w", err)
	}
	s.ledger.Transactions = append(s.ledger.Transactions, committed...)
	return committed, nil
}

// UpdateTransaction replaces a committed transaction.
func (s *Service) UpdateTransaction(t model.Transaction) error {
	if err := ValidateDraft(t); err != nil {
		return err
	}
	if err := s.store.UpdateTransaction(t); err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}
	for i := range s.ledger.Transactions {
		if s.ledger.Transactions[i].ID == t.ID {
			s.ledger.Transactions[i] = t
			break
		}
	}
	return nil
}

// DeleteTransaction removes a transaction and returns the removed
// record so callers can offer an undo.
func (s *Service) DeleteTransaction(txID string) (model.Transaction, error) {
	var deleted model.Transaction
	found := false
	for _, t := range s.ledger.Transactions {
		if t.ID == txID {
			deleted = t
			found = true
			break
		}
	}
	if !found {
		return model.Transaction{}, store.ErrNotFound
	}

	if err := s.store.DeleteTransaction(txID); err != nil {
		return model.Transaction{}, fmt.Errorf("deleting transaction: %w", err)
	}
	for i := range s.ledger.Transactions {
		if s.ledger.Transactions[i].ID == txID {
			s.ledger.Transactions = append(s.ledger.Transactions[:i], s.ledger.Transactions[i+1:]...)
			break
		}
	}
	return deleted, nil
}

// RestoreTransaction re-inserts a previously deleted transaction with
// the same content and a fresh id (undo is a re-insert, not a
// resurrection).
func (s *Service) RestoreTransaction(t model.Transaction) (model.Transaction, error) {
	t.ID = ""
	return s.AddTransaction(t)
}

// AddAccount assigns an id and commits a new account.
func (s *Service) AddAccount(draft model.Account) (model.Account, error) {
	if draft.Name == "" {
		return model.Account{}, ValidationError{Field: "name", Message: "account name is required"}
	}
	if !model.ValidAccountType(draft.Type) {
		return model.Account{}, ValidationError{Field: "type", Message: fmt.Sprintf("unknown account type %q", draft.Type)}
	}

	draft.ID = id.New()
	if err := s.store.InsertAccount(draft); err != nil {
		return model.Account{}, fmt.Errorf("inserting account: %w", err)
	}
	s.ledger.Accounts = append(s.ledger.Accounts, draft)
	return draft, nil
}

// UpdateAccount replaces an account.
func (s *Service) UpdateAccount(a model.Account) error {
	if err := s.store.UpdateAccount(a); err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	for i := range s.ledger.Accounts {
		if s.ledger.Accounts[i].ID == a.ID {
			s.ledger.Accounts[i] = a
			break
		}
	}
	return nil
}

// DeleteAccount removes an account unconditionally. Transactions that
// reference it keep their accountId and simply dangle; there is no
// referential guard here, unlike category deletion.
func (s *Service) DeleteAccount(accountID string) error {
	if err := s.store.DeleteAccount(accountID); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	for i := range s.ledger.Accounts {
		if s.ledger.Accounts[i].ID == accountID {
			s.ledger.Accounts = append(s.ledger.Accounts[:i], s.ledger.Accounts[i+1:]...)
			break
		}
	}
	return nil
}

// AddCategory assigns an id and commits a new category.
func (s *Service) AddCategory(draft model.Category) (model.Category, error) {
	if draft.Name == "" {
		return model.Category{}, ValidationError{Field: "name", Message: "category name is required"}
	}
	if !model.ValidTransactionType(draft.Type) {
		return model.Category{}, ValidationError{Field: "type", Message: fmt.Sprintf("unknown category type %q", draft.Type)}
	}

	draft.ID = id.New()
	if err := s.store.InsertCategory(draft); err != nil {
		return model.Category{}, fmt.Errorf("inserting category: %w", err)
	}
	s.ledger.Categories = append(s.ledger.Categories, draft)
	return draft, nil
}

// UpdateCategory replaces a category.
func (s *Service) UpdateCategory(c model.Category) error {
	if err := s.store.UpdateCategory(c); err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	for i := range s.ledger.Categories {
		if s.ledger.Categories[i].ID == c.ID {
			s.ledger.Categories[i] = c
			break
		}
	}
	return nil
}

// DeleteCategory removes a category unless any transaction still
// references it, in which case a CategoryInUseError comes back and
// nothing changes.
func (s *Service) DeleteCategory(categoryID string) error {
	if s.ledger.CategoryInUse(categoryID) {
		return CategoryInUseError{CategoryID: categoryID}
	}
	if err := s.store.DeleteCategory(categoryID); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	for i := range s.ledger.Categories {
		if s.ledger.Categories[i].ID == categoryID {
			s.ledger.Categories = append(s.ledger.Categories[:i], s.ledger.Categories[i+1:]...)
			break
		}
	}
	return nil
}
