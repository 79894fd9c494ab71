package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType carries the sign of a transaction; Amount is always
// stored non-negative.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TypeIncome || t == TypeExpense
}

// Frequency describes how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyYearly  Frequency = "YEARLY"
	FrequencyOneTime Frequency = "ONE_TIME"
)

// DateFormat is the calendar-date layout used everywhere amounts meet
// dates: ISO-8601 without a time component.
const DateFormat = "2006-01-02"

// Installments marks one materialized installment of a larger purchase.
// Installments are independent records; Current/Total is the only link
// between them.
type Installments struct {
	Current int
	Total   int
}

// Transaction is one committed ledger movement.
type Transaction struct {
	ID           string
	Description  string
	Amount       decimal.Decimal // non-negative; sign carried by Type
	Date         time.Time       // calendar date, midnight UTC
	Type         TransactionType
	CategoryID   string
	AccountID    string
	IsRecurring  bool
	Frequency    Frequency
	Installments *Installments
	Tags         []string
	IsImported   bool
}

// ISODate returns the transaction date as YYYY-MM-DD.
func (t Transaction) ISODate() string {
	return t.Date.Format(DateFormat)
}

// Date builds a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameMonth reports whether two dates fall in the same calendar month
// and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
