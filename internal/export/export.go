// Package export renders a month of the ledger as a spreadsheet
// friendly CSV: semicolon separated, UTF-8 BOM, pt-BR dates and
// number formatting.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/model"
)

const header = "Data;Descrição;Categoria;Conta;Tipo;Valor;Status"

// Month writes the transactions of the given calendar month, newest
// first.
func Month(w io.Writer, ledger model.Ledger, month time.Time) error {
	var txs []model.Transaction
	for _, t := range ledger.Transactions {
		if model.SameMonth(t.Date, month) {
			txs = append(txs, t)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})

	lines := make([]string, 0, len(txs)+1)
	lines = append(lines, header)
	for _, t := range txs {
		lines = append(lines, row(t, ledger))
	}

	_, err := io.WriteString(w, "\uFEFF"+strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func row(t model.Transaction, ledger model.Ledger) string {
	catName := "N/A"
	if c, ok := ledger.CategoryByID(t.CategoryID); ok {
		catName = c.Name
	}
	accName := "N/A"
	if a, ok := ledger.AccountByID(t.AccountID); ok {
		accName = a.Name
	}

	typeLabel := "Despesa"
	if t.Type == model.TypeIncome {
		typeLabel = "Receita"
	}

	status := "Normal"
	switch {
	case t.IsRecurring:
		status = "Fixa"
	case t.Installments != nil:
		status = fmt.Sprintf("Parc. %d/%d", t.Installments.Current, t.Installments.Total)
	}

	return strings.Join([]string{
		t.Date.Format("02/01/2006"),
		quote(t.Description),
		quote(catName),
		quote(accName),
		typeLabel,
		FormatBRL(t.Amount),
		status,
	}, ";")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatBRL renders a decimal the pt-BR way, dot for thousands and
// comma for cents: 1234.5 becomes 1.234,50.
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
