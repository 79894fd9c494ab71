package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/model"
)

// CSV row codecs for the three ledger tables.

// AccountsHeader is the CSV header for accounts.csv.
const AccountsHeader = "id,name,institution,type,color_tag,initial_balance"

const (
	accNumFields = 6
	accColID     = 0
	accColName   = 1
	accColInst   = 2
	accColType   = 3
	accColColor  = 4
	accColInit   = 5
)

// CategoriesHeader is the CSV header for categories.csv.
const CategoriesHeader = "id,name,type,color,icon_key"

const (
	catNumFields = 5
	catColID     = 0
	catColName   = 1
	catColType   = 2
	catColColor  = 3
	catColIcon   = 4
)

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "id,date,description,amount,type,category_id,account_id,is_recurring,frequency,installment_current,installment_total,tags,is_imported"

const (
	txNumFields  = 13
	txColID      = 0
	txColDate    = 1
	txColDesc    = 2
	txColAmount  = 3
	txColType    = 4
	txColCat     = 5
	txColAcct    = 6
	txColRecur   = 7
	txColFreq    = 8
	txColInstCur = 9
	txColInstTot = 10
	txColTags    = 11
	txColImport  = 12
)

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, accNumFields)
	row[accColID] = a.ID
	row[accColName] = a.Name
	row[accColInst] = a.Institution
	row[accColType] = string(a.Type)
	row[accColColor] = a.ColorTag
	row[accColInit] = a.InitialBalance.String()
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != accNumFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", accNumFields, len(record))
	}

	initial := decimal.Zero
	if record[accColInit] != "" {
		var err error
		initial, err = decimal.NewFromString(record[accColInit])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing initial_balance %q: %w", record[accColInit], err)
		}
	}

	return model.Account{
		ID:             record[accColID],
		Name:           record[accColName],
		Institution:    record[accColInst],
		Type:           model.AccountType(record[accColType]),
		ColorTag:       record[accColColor],
		InitialBalance: initial,
	}, nil
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(c model.Category) []string {
	row := make([]string, catNumFields)
	row[catColID] = c.ID
	row[catColName] = c.Name
	row[catColType] = string(c.Type)
	row[catColColor] = c.Color
	row[catColIcon] = c.IconKey
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (model.Category, error) {
	if len(record) != catNumFields {
		return model.Category{}, fmt.Errorf("expected %d fields, got %d", catNumFields, len(record))
	}
	return model.Category{
		ID:      record[catColID],
		Name:    record[catColName],
		Type:    model.TransactionType(record[catColType]),
		Color:   record[catColColor],
		IconKey: record[catColIcon],
	}, nil
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, txNumFields)
	row[txColID] = t.ID
	row[txColDate] = t.Date.Format(model.DateFormat)
	row[txColDesc] = t.Description
	row[txColAmount] = t.Amount.StringFixed(2)
	row[txColType] = string(t.Type)
	row[txColCat] = t.CategoryID
	row[txColAcct] = t.AccountID
	if t.IsRecurring {
		row[txColRecur] = "true"
	}
	row[txColFreq] = string(t.Frequency)
	if t.Installments != nil {
		row[txColInstCur] = strconv.Itoa(t.Installments.Current)
		row[txColInstTot] = strconv.Itoa(t.Installments.Total)
	}
	row[txColTags] = strings.Join(t.Tags, ";")
	if t.IsImported {
		row[txColImport] = "true"
	}
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != txNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txNumFields, len(record))
	}

	date, err := time.ParseInLocation(model.DateFormat, record[txColDate], time.UTC)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[txColDate], err)
	}

	amount, err := decimal.NewFromString(record[txColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[txColAmount], err)
	}

	var installments *model.Installments
	if record[txColInstCur] != "" || record[txColInstTot] != "" {
		current, err := strconv.Atoi(record[txColInstCur])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing installment_current %q: %w", record[txColInstCur], err)
		}
		total, err := strconv.Atoi(record[txColInstTot])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing installment_total %q: %w", record[txColInstTot], err)
		}
		installments = &model.Installments{Current: current, Total: total}
	}

	var tags []string
	if record[txColTags] != "" {
		tags = strings.Split(record[txColTags], ";")
	}

	return model.Transaction{
		ID:           record[txColID],
		Description:  record[txColDesc],
		Amount:       amount,
		Date:         date,
		Type:         model.TransactionType(record[txColType]),
		CategoryID:   record[txColCat],
		AccountID:    record[txColAcct],
		IsRecurring:  record[txColRecur] == "true",
		Frequency:    model.Frequency(record[txColFreq]),
		Installments: installments,
		Tags:         tags,
		IsImported:   record[txColImport] == "true",
	}, nil
}

func readRows(r io.Reader, numFields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

func writeRows(w io.Writer, header string, rows [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
