// Package seed provides the starter chart of categories and accounts
// for a new ledger. Ids are fixed so the anomaly rules and docs can
// refer to them.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/model"
	"github.com/fluxozen/fluxozen/internal/store"
)

// CorporateAccountIDs are the accounts the weekend anomaly rule
// watches.
var CorporateAccountIDs = []string{"acc_main", "acc_business"}

// CatchAllCategoryName is the category the medium outlier rule keys
// on.
const CatchAllCategoryName = "Other"

// Categories returns the default chart of categories.
func Categories() []model.Category {
	return []model.Category{
		{ID: "cat_inc_1", Name: "Services", Type: model.TypeIncome, Color: "#10B981", IconKey: "Briefcase"},
		{ID: "cat_inc_2", Name: "Product Sales", Type: model.TypeIncome, Color: "#34D399", IconKey: "ShoppingBag"},
		{ID: "cat_inc_3", Name: "Refunds", Type: model.TypeIncome, Color: "#06B6D4", IconKey: "RefreshCw"},
		{ID: "cat_inc_4", Name: "Interest", Type: model.TypeIncome, Color: "#6366F1", IconKey: "TrendingUp"},

		{ID: "cat_exp_1", Name: "Rent", Type: model.TypeExpense, Color: "#F43F5E", IconKey: "Home"},
		{ID: "cat_exp_2", Name: "Suppliers", Type: model.TypeExpense, Color: "#EA580C", IconKey: "Truck"},
		{ID: "cat_exp_3", Name: "Payroll", Type: model.TypeExpense, Color: "#CA8A04", IconKey: "Users"},
		{ID: "cat_exp_4", Name: "Taxes", Type: model.TypeExpense, Color: "#9CA3AF", IconKey: "FileText"},
		{ID: "cat_exp_5", Name: "Transport", Type: model.TypeExpense, Color: "#EF4444", IconKey: "Car"},
		{ID: "cat_exp_6", Name: "Marketing", Type: model.TypeExpense, Color: "#8B5CF6", IconKey: "Megaphone"},
		{ID: "cat_exp_7", Name: "Software", Type: model.TypeExpense, Color: "#3B82F6", IconKey: "Monitor"},
		{ID: "cat_exp_8", Name: "Office Supplies", Type: model.TypeExpense, Color: "#64748B", IconKey: "Paperclip"},
		{ID: "cat_exp_9", Name: "Entertainment", Type: model.TypeExpense, Color: "#EC4899", IconKey: "Coffee"},
		{ID: "cat_exp_10", Name: CatchAllCategoryName, Type: model.TypeExpense, Color: "#64748B", IconKey: "HelpCircle"},
	}
}

// Accounts returns the default account set.
func Accounts() []model.Account {
	return []model.Account{
		{ID: "acc_main", Name: "Conta Principal", Institution: "Nubank", Type: model.AccountChecking, ColorTag: "#8B5CF6", InitialBalance: decimal.Zero},
		{ID: "acc_business", Name: "Conta Empresarial", Institution: "Banco do Brasil", Type: model.AccountChecking, ColorTag: "#FBBF24", InitialBalance: decimal.Zero},
		{ID: "acc_reserve", Name: "Reserva", Institution: "Caixa Econômica", Type: model.AccountInvestment, ColorTag: "#06B6D4", InitialBalance: decimal.Zero},
		{ID: "acc_cash", Name: "Caixa", Institution: "Dinheiro Físico", Type: model.AccountCash, ColorTag: "#10B981", InitialBalance: decimal.Zero},
		{ID: "acc_card", Name: "Nubank Crédito", Institution: "Nubank", Type: model.AccountCreditCard, ColorTag: "#8B5CF6", InitialBalance: decimal.Zero},
	}
}

// Apply inserts the default data into an empty store. It refuses to
// run against a store that already has accounts or categories.
func Apply(st store.Store) error {
	ledger, err := st.Load()
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}
	if len(ledger.Accounts) > 0 || len(ledger.Categories) > 0 {
		return fmt.Errorf("ledger already initialized")
	}

	for _, a := range Accounts() {
		if err := st.InsertAccount(a); err != nil {
			return fmt.Errorf("seeding account %s: %w", a.ID, err)
		}
	}
	for _, c := range Categories() {
		if err := st.InsertCategory(c); err != nil {
			return fmt.Errorf("seeding category %s: %w", c.ID, err)
		}
	}
	return nil
}
