// Package metrics derives balances and monthly aggregates from a
// ledger snapshot. Every function is a pure fold over the input; the
// results are re-derivable at any time and order-independent.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/model"
)

// AccountBalance returns the derived balance of one account: its
// initial balance plus income minus expense over that account's
// transactions. Credit card accounts invert the contribution:
// expenses grow the payable, incomes (payments) shrink it.
func AccountBalance(account model.Account, transactions []model.Transaction) decimal.Decimal {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		if t.AccountID != account.ID {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	if account.Type == model.AccountCreditCard {
		return account.InitialBalance.Add(expense).Sub(income)
	}
	return account.InitialBalance.Add(income).Sub(expense)
}

// TotalBalance sums account balances across the ledger. Credit card
// balances are liabilities and are netted against the asset accounts
// rather than added.
func TotalBalance(accounts []model.Account, transactions []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		balance := AccountBalance(a, transactions)
		if a.Type == model.AccountCreditCard {
			total = total.Sub(balance)
		} else {
			total = total.Add(balance)
		}
	}
	return total
}

// MonthlyIncome sums income amounts dated in the same calendar month
// and year as month.
func MonthlyIncome(transactions []model.Transaction, month time.Time) decimal.Decimal {
	return sumInMonth(transactions, month, func(t model.Transaction) bool {
		return t.Type == model.TypeIncome
	})
}

// MonthlyExpense sums expense amounts dated in the same calendar month
// and year as month.
func MonthlyExpense(transactions []model.Transaction, month time.Time) decimal.Decimal {
	return sumInMonth(transactions, month, func(t model.Transaction) bool {
		return t.Type == model.TypeExpense
	})
}

// FixedCostProjection sums the month's recurring expenses, the
// run-rate a business is committed to regardless of activity.
func FixedCostProjection(transactions []model.Transaction, month time.Time) decimal.Decimal {
	return sumInMonth(transactions, month, func(t model.Transaction) bool {
		return t.Type == model.TypeExpense && t.IsRecurring
	})
}

// SafeBalance answers "what is left once known upcoming bills clear":
// the total balance minus expenses in today's month dated strictly
// after today.
func SafeBalance(totalBalance decimal.Decimal, transactions []model.Transaction, today time.Time) decimal.Decimal {
	pending := decimal.Zero
	for _, t := range transactions {
		if t.Type != model.TypeExpense {
			continue
		}
		if model.SameMonth(t.Date, today) && t.Date.After(today) {
			pending = pending.Add(t.Amount)
		}
	}
	return totalBalance.Sub(pending)
}

// RunwayMonths returns how many months of fixed costs the total
// balance covers, rounded down. A zero fixed-cost projection yields 0
// by convention; runway is undefined, not infinite.
func RunwayMonths(totalBalance, fixedCostProjection decimal.Decimal) int {
	if fixedCostProjection.IsZero() {
		return 0
	}
	return int(totalBalance.Div(fixedCostProjection).Floor().IntPart())
}

func sumInMonth(transactions []model.Transaction, month time.Time, match func(model.Transaction) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if model.SameMonth(t.Date, month) && match(t) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}
