package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fluxozen/fluxozen/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(id, accountID string, txType model.TransactionType, amount string, date time.Time) model.Transaction {
	return model.Transaction{
		ID:        id,
		Amount:    dec(amount),
		Date:      date,
		Type:      txType,
		AccountID: accountID,
	}
}

func TestAccountBalance_Checking(t *testing.T) {
	account := model.Account{ID: "acc_1", Type: model.AccountChecking, InitialBalance: dec("100")}
	txs := []model.Transaction{
		tx("t1", "acc_1", model.TypeIncome, "500", model.Date(2025, 12, 1)),
		tx("t2", "acc_1", model.TypeExpense, "200", model.Date(2025, 12, 2)),
		tx("t3", "acc_other", model.TypeIncome, "9999", model.Date(2025, 12, 3)),
	}

	assert.Equal(t, "400", AccountBalance(account, txs).String())
}

func TestAccountBalance_CreditCardInverts(t *testing.T) {
	card := model.Account{ID: "acc_cc", Type: model.AccountCreditCard, InitialBalance: dec("50")}
	txs := []model.Transaction{
		tx("t1", "acc_cc", model.TypeExpense, "300", model.Date(2025, 12, 1)),
		tx("t2", "acc_cc", model.TypeIncome, "100", model.Date(2025, 12, 5)), // card payment
	}

	// initial + expense - income: the card balance is a payable.
	assert.Equal(t, "250", AccountBalance(card, txs).String())
}

func TestTotalBalance_NetsCreditCards(t *testing.T) {
	accounts := []model.Account{
		{ID: "acc_1", Type: model.AccountChecking, InitialBalance: dec("1000")},
		{ID: "acc_cc", Type: model.AccountCreditCard, InitialBalance: dec("0")},
	}
	txs := []model.Transaction{
		tx("t1", "acc_cc", model.TypeExpense, "300", model.Date(2025, 12, 1)),
	}

	assert.Equal(t, "700", TotalBalance(accounts, txs).String())
}

func TestTotalBalance_OrderInvariant(t *testing.T) {
	accounts := []model.Account{
		{ID: "a", Type: model.AccountChecking, InitialBalance: dec("10")},
		{ID: "b", Type: model.AccountCash, InitialBalance: dec("20")},
		{ID: "c", Type: model.AccountCreditCard, InitialBalance: dec("5")},
	}
	txs := []model.Transaction{
		tx("t1", "a", model.TypeIncome, "100", model.Date(2025, 1, 1)),
		tx("t2", "b", model.TypeExpense, "30", model.Date(2025, 1, 2)),
		tx("t3", "c", model.TypeExpense, "40", model.Date(2025, 1, 3)),
	}

	want := TotalBalance(accounts, txs)

	reversedAccounts := []model.Account{accounts[2], accounts[0], accounts[1]}
	reversedTxs := []model.Transaction{txs[2], txs[0], txs[1]}
	assert.True(t, want.Equal(TotalBalance(reversedAccounts, reversedTxs)))
}

func TestMonthlyAggregates(t *testing.T) {
	december := model.Date(2025, 12, 15)
	txs := []model.Transaction{
		tx("t1", "a", model.TypeIncome, "1000", model.Date(2025, 12, 1)),
		tx("t2", "a", model.TypeIncome, "500", model.Date(2025, 12, 31)),
		tx("t3", "a", model.TypeExpense, "200", model.Date(2025, 12, 10)),
		tx("t4", "a", model.TypeIncome, "9999", model.Date(2025, 11, 30)), // prior month
		tx("t5", "a", model.TypeExpense, "9999", model.Date(2026, 12, 10)), // same month, other year
	}

	assert.Equal(t, "1500", MonthlyIncome(txs, december).String())
	assert.Equal(t, "200", MonthlyExpense(txs, december).String())
}

func TestFixedCostProjection(t *testing.T) {
	december := model.Date(2025, 12, 15)
	rent := tx("t1", "a", model.TypeExpense, "2000", model.Date(2025, 12, 5))
	rent.IsRecurring = true
	oneOff := tx("t2", "a", model.TypeExpense, "500", model.Date(2025, 12, 6))

	assert.Equal(t, "2000", FixedCostProjection([]model.Transaction{rent, oneOff}, december).String())
}

func TestSafeBalance(t *testing.T) {
	today := model.Date(2025, 12, 10)
	txs := []model.Transaction{
		tx("t1", "a", model.TypeExpense, "300", model.Date(2025, 12, 20)), // upcoming
		tx("t2", "a", model.TypeExpense, "100", model.Date(2025, 12, 5)),  // already cleared
		tx("t3", "a", model.TypeExpense, "999", model.Date(2026, 1, 2)),   // next month
		tx("t4", "a", model.TypeIncome, "999", model.Date(2025, 12, 20)),  // income ignored
	}

	assert.Equal(t, "700", SafeBalance(dec("1000"), txs, today).String())
}

func TestSafeBalance_TodayIsNotPending(t *testing.T) {
	today := model.Date(2025, 12, 10)
	txs := []model.Transaction{
		tx("t1", "a", model.TypeExpense, "300", today), // dated today: not strictly after
	}

	assert.Equal(t, "1000", SafeBalance(dec("1000"), txs, today).String())
}

func TestRunwayMonths(t *testing.T) {
	assert.Equal(t, 5, RunwayMonths(dec("10000"), dec("2000")))
	assert.Equal(t, 2, RunwayMonths(dec("5000"), dec("2000")))
	assert.Equal(t, 0, RunwayMonths(dec("10000"), dec("0")))
	assert.Equal(t, 0, RunwayMonths(dec("0"), dec("2000")))
}
