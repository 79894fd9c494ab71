package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fluxozen/fluxozen/internal/model"
)

const (
	accountsFile     = "accounts.csv"
	categoriesFile   = "categories.csv"
	transactionsFile = "transactions.csv"
)

// File persists the ledger as three CSV tables under a data
// directory. Every mutation rewrites the affected table atomically
// (temp file + rename), which gives batch inserts their
// all-or-nothing guarantee.
type File struct {
	dir string
}

// NewFile creates a file store rooted at dir. Missing files read as
// empty tables; the directory is created on first write.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Load reads the full ledger from disk.
func (s *File) Load() (*model.Ledger, error) {
	ledger := &model.Ledger{}

	rows, err := s.readFile(accountsFile, accNumFields)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		a, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", accountsFile, i+2, err)
		}
		ledger.Accounts = append(ledger.Accounts, a)
	}

	rows, err = s.readFile(categoriesFile, catNumFields)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		c, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", categoriesFile, i+2, err)
		}
		ledger.Categories = append(ledger.Categories, c)
	}

	rows, err = s.readFile(transactionsFile, txNumFields)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", transactionsFile, i+2, err)
		}
		ledger.Transactions = append(ledger.Transactions, t)
	}

	return ledger, nil
}

func (s *File) InsertAccount(a model.Account) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	ledger.Accounts = append(ledger.Accounts, a)
	return s.saveAccounts(ledger.Accounts)
}

func (s *File) UpdateAccount(a model.Account) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	for i := range ledger.Accounts {
		if ledger.Accounts[i].ID == a.ID {
			ledger.Accounts[i] = a
			return s.saveAccounts(ledger.Accounts)
		}
	}
	return ErrNotFound
}

func (s *File) DeleteAccount(id string) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	for i := range ledger.Accounts {
		if ledger.Accounts[i].ID == id {
			ledger.Accounts = append(ledger.Accounts[:i], ledger.Accounts[i+1:]...)
			return s.saveAccounts(ledger.Accounts)
		}
	}
	return ErrNotFound
}

func (s *File) InsertCategory(c model.Category) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	ledger.Categories = append(ledger.Categories, c)
	return s.saveCategories(ledger.Categories)
}

func (s *File) UpdateCategory(c model.Category) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	for i := range ledger.Categories {
		if ledger.Categories[i].ID == c.ID {
			ledger.Categories[i] = c
			return s.saveCategories(ledger.Categories)
		}
	}
	return ErrNotFound
}

func (s *File) DeleteCategory(id string) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	for i := range ledger.Categories {
		if ledger.Categories[i].ID == id {
			ledger.Categories = append(ledger.Categories[:i], ledger.Categories[i+1:]...)
			return s.saveCategories(ledger.Categories)
		}
	}
	return ErrNotFound
}

func (s *File) InsertTransaction(t model.Transaction) error {
	return s.InsertTransactions([]model.Transaction{t})
}

func (s *File) InsertTransactions(ts []model.Transaction) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	ledger.Transactions = append(ledger.Transactions, ts...)
	return s.saveTransactions(ledger.Transactions)
}

func (s *File) UpdateTransaction(t model.Transaction) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	for i := range ledger.Transactions {
		if ledger.Transactions[i].ID == t.ID {
			ledger.Transactions[i] = t
			return s.saveTransactions(ledger.Transactions)
		}
	}
	return ErrNotFound
}

func (s *File) DeleteTransaction(id string) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	for i := range ledger.Transactions {
		if ledger.Transactions[i].ID == id {
			ledger.Transactions = append(ledger.Transactions[:i], ledger.Transactions[i+1:]...)
			return s.saveTransactions(ledger.Transactions)
		}
	}
	return ErrNotFound
}

func (s *File) readFile(name string, numFields int) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	rows, err := readRows(f, numFields)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return rows, nil
}

func (s *File) saveAccounts(accounts []model.Account) error {
	rows := make([][]string, len(accounts))
	for i, a := range accounts {
		rows[i] = MarshalAccount(a)
	}
	return s.writeFile(accountsFile, AccountsHeader, rows)
}

func (s *File) saveCategories(categories []model.Category) error {
	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = MarshalCategory(c)
	}
	return s.writeFile(categoriesFile, CategoriesHeader, rows)
}

func (s *File) saveTransactions(transactions []model.Transaction) error {
	rows := make([][]string, len(transactions))
	for i, t := range transactions {
		rows[i] = MarshalTransaction(t)
	}
	return s.writeFile(transactionsFile, TransactionsHeader, rows)
}

// writeFile rewrites one table atomically: write a temp file in the
// same directory, then rename over the target.
func (s *File) writeFile(name, header string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writeRows(tmp, header, rows); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
