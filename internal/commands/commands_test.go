package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxozen/fluxozen/internal/auditlog"
	"github.com/fluxozen/fluxozen/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Padaria Sao Jose", "mei"))
	return dir
}

func TestInit_CreatesProject(t *testing.T) {
	dir := initProject(t)

	for _, d := range []string{"data", "logs", "import"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	data, err := os.ReadFile(filepath.Join(dir, "fluxozen.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Padaria Sao Jose")

	proj, err := openProject(dir)
	require.NoError(t, err)
	snapshot := proj.service.Snapshot()
	assert.Len(t, snapshot.Accounts, 5)
	assert.Len(t, snapshot.Categories, 14)
	assert.Empty(t, snapshot.Transactions)
}

func TestInit_TwiceFails(t *testing.T) {
	dir := initProject(t)
	assert.Error(t, runInit(dir, "Padaria Sao Jose", "mei"))
}

func TestOpenProject_NotInitialized(t *testing.T) {
	_, err := openProject(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fluxozen init")
}

func TestImport_CSVStatement(t *testing.T) {
	dir := initProject(t)

	statement := "01/12/2025,1500.00,Pagamento Cliente A\n" +
		"05/12/2025,-230.50,Fornecedor XYZ\n"
	path := filepath.Join(dir, "import", "extrato.csv")
	require.NoError(t, os.WriteFile(path, []byte(statement), 0o644))

	var buf strings.Builder
	require.NoError(t, runImport(&buf, dir, path, "acc_main"))
	assert.Contains(t, buf.String(), "Imported 2 transactions")

	proj, err := openProject(dir)
	require.NoError(t, err)
	snapshot := proj.service.Snapshot()
	require.Len(t, snapshot.Transactions, 2)

	for _, tx := range snapshot.Transactions {
		assert.True(t, tx.IsImported)
		assert.Equal(t, "acc_main", tx.AccountID)
		assert.Contains(t, tx.Tags, "imported")
	}

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImport_UnknownAccount(t *testing.T) {
	dir := initProject(t)
	path := filepath.Join(dir, "extrato.csv")
	require.NoError(t, os.WriteFile(path, []byte("01/12/2025,100,x\n"), 0o644))

	var buf strings.Builder
	err := runImport(&buf, dir, path, "acc_nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acc_nope")
}

func TestImport_UnsupportedFormat(t *testing.T) {
	dir := initProject(t)
	path := filepath.Join(dir, "extrato.pdf")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o644))

	var buf strings.Builder
	assert.Error(t, runImport(&buf, dir, path, "acc_main"))
}

func TestScan_CleanLedger(t *testing.T) {
	dir := initProject(t)

	var buf strings.Builder
	require.NoError(t, runScan(&buf, dir))
	assert.Contains(t, buf.String(), "No anomalies found")
}

func TestScan_FlagsOutlier(t *testing.T) {
	dir := initProject(t)

	proj, err := openProject(dir)
	require.NoError(t, err)
	_, err = proj.service.AddTransaction(model.Transaction{
		Description: "Equipamento",
		Amount:      dec("15000"),
		Date:        model.Date(2025, 12, 3),
		Type:        model.TypeExpense,
		CategoryID:  "cat_exp_10",
		AccountID:   "acc_main",
	})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, runScan(&buf, dir))
	assert.Contains(t, buf.String(), "OUTLIER")
	assert.Contains(t, buf.String(), "1 anomalies found")
}

func TestReport(t *testing.T) {
	dir := initProject(t)

	proj, err := openProject(dir)
	require.NoError(t, err)
	_, err = proj.service.AddTransaction(model.Transaction{
		Description: "Pagamento Cliente",
		Amount:      dec("1500"),
		Date:        model.Date(2025, 12, 1),
		Type:        model.TypeIncome,
		CategoryID:  "cat_inc_1",
		AccountID:   "acc_main",
	})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, runReport(&buf, dir, model.Date(2025, 12, 1)))
	out := buf.String()
	assert.Contains(t, out, "Padaria Sao Jose")
	assert.Contains(t, out, "December 2025")
	assert.Contains(t, out, "1.500,00")
}

func TestExport_ToFile(t *testing.T) {
	dir := initProject(t)

	proj, err := openProject(dir)
	require.NoError(t, err)
	_, err = proj.service.AddTransaction(model.Transaction{
		Description: "Aluguel",
		Amount:      dec("2500"),
		Date:        model.Date(2025, 12, 1),
		Type:        model.TypeExpense,
		CategoryID:  "cat_exp_1",
		AccountID:   "acc_main",
	})
	require.NoError(t, err)

	outPath := filepath.Join(dir, "relatorio.csv")
	var buf strings.Builder
	require.NoError(t, runExport(&buf, dir, model.Date(2025, 12, 1), outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Aluguel")
	assert.Contains(t, string(data), "2.500,00")
}

func TestParseMonth(t *testing.T) {
	m, err := parseMonth("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", m.Format("2006-01-02"))

	_, err = parseMonth("12/2025")
	assert.Error(t, err)
}
