package store

import "github.com/fluxozen/fluxozen/internal/model"

// Memory is an in-process Store for tests and ephemeral sessions.
type Memory struct {
	ledger model.Ledger

	// Err, when set, is returned by every mutation. Tests use it to
	// exercise persistence-failure handling.
	Err error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith creates an in-memory store seeded with a ledger.
func NewMemoryWith(ledger model.Ledger) *Memory {
	return &Memory{ledger: ledger}
}

// Load returns a copy of the stored ledger.
func (m *Memory) Load() (*model.Ledger, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := model.Ledger{
		Accounts:     append([]model.Account(nil), m.ledger.Accounts...),
		Categories:   append([]model.Category(nil), m.ledger.Categories...),
		Transactions: append([]model.Transaction(nil), m.ledger.Transactions...),
	}
	return &out, nil
}

func (m *Memory) InsertAccount(a model.Account) error {
	if m.Err != nil {
		return m.Err
	}
	m.ledger.Accounts = append(m.ledger.Accounts, a)
	return nil
}

func (m *Memory) UpdateAccount(a model.Account) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.ledger.Accounts {
		if m.ledger.Accounts[i].ID == a.ID {
			m.ledger.Accounts[i] = a
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteAccount(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.ledger.Accounts {
		if m.ledger.Accounts[i].ID == id {
			m.ledger.Accounts = append(m.ledger.Accounts[:i], m.ledger.Accounts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) InsertCategory(c model.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.ledger.Categories = append(m.ledger.Categories, c)
	return nil
}

func (m *Memory) UpdateCategory(c model.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.ledger.Categories {
		if m.ledger.Categories[i].ID == c.ID {
			m.ledger.Categories[i] = c
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteCategory(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.ledger.Categories {
		if m.ledger.Categories[i].ID == id {
			m.ledger.Categories = append(m.ledger.Categories[:i], m.ledger.Categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) InsertTransaction(t model.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.ledger.Transactions = append(m.ledger.Transactions, t)
	return nil
}

func (m *Memory) InsertTransactions(ts []model.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.ledger.Transactions = append(m.ledger.Transactions, ts...)
	return nil
}

func (m *Memory) UpdateTransaction(t model.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.ledger.Transactions {
		if m.ledger.Transactions[i].ID == t.ID {
			m.ledger.Transactions[i] = t
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteTransaction(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.ledger.Transactions {
		if m.ledger.Transactions[i].ID == id {
			m.ledger.Transactions = append(m.ledger.Transactions[:i], m.ledger.Transactions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
