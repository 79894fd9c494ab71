package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CSVHeaderless(t *testing.T) {
	// Comma is both the column separator and the decimal marker here;
	// segmentation still lands the integer part in column 1.
	content := "25/12/2025,150,00\n26/12/2025,-40,00"

	candidates, err := Parse(content, "extrato.csv")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "2025-12-25", candidates[0].Date.Format("2006-01-02"))
	assert.Equal(t, "150", candidates[0].Amount.String())
	assert.True(t, candidates[0].Amount.IsPositive())
	assert.Equal(t, ImportedDescription, candidates[0].Description)

	assert.Equal(t, "2025-12-26", candidates[1].Date.Format("2006-01-02"))
	assert.True(t, candidates[1].Amount.IsNegative())
}

func TestParse_CSVSemicolonWithHeader(t *testing.T) {
	content := "Data;Descricao;Valor\n25/12/2025;PIX RECEBIDO;R$ 1.234,56\n26/12/2025;BOLETO;-40,00\n"

	candidates, err := Parse(content, "extrato.CSV")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Column 1 is not numeric, so the amount comes from the last column.
	assert.Equal(t, "1234.56", candidates[0].Amount.String())
	assert.Equal(t, "-40", candidates[1].Amount.String())
}

func TestParse_CSVISODates(t *testing.T) {
	content := "2025-12-25;100,00\n2025-12-26;200,00"

	candidates, err := Parse(content, "bank.csv")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "2025-12-25", candidates[0].Date.Format("2006-01-02"))
}

func TestParse_CSVSkipsBadRows(t *testing.T) {
	content := "Data;Valor\n" +
		"25/12/2025;100,00\n" +
		"justonecolumn\n" + // fewer than 2 columns
		"26/12/2025;not-a-number\n" + // no parsable amount
		"not-a-date;50,00\n" // no parsable date

	candidates, err := Parse(content, "extrato.csv")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "100", candidates[0].Amount.String())
}

func TestParse_CSVAllRowsDropped(t *testing.T) {
	content := "Data;Valor\nnope;also nope\n"

	_, err := Parse(content, "extrato.csv")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestParse_OFX(t *testing.T) {
	content := `OFXHEADER:100
<OFX><BANKMSGSRSV1><STMTTRNRS><BANKTRANLIST>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20251225
<TRNAMT>-40.00
<FITID>1
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20251225
<TRNAMT>1500.00
<FITID>2
</STMTTRN>
</BANKTRANLIST></STMTTRNRS></BANKMSGSRSV1></OFX>`

	candidates, err := Parse(content, "extrato.ofx")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "2025-12-25", candidates[0].Date.Format("2006-01-02"))
	assert.Equal(t, "-40", candidates[0].Amount.String())
	assert.Equal(t, "2025-12-25", candidates[1].Date.Format("2006-01-02"))
	assert.Equal(t, "1500", candidates[1].Amount.String())
}

func TestParse_OFXDropsIncompleteSegments(t *testing.T) {
	content := "<STMTTRN><DTPOSTED>20251225</STMTTRN>" + // no amount
		"<STMTTRN><TRNAMT>-10.00</STMTTRN>" + // no date
		"<STMTTRN><DTPOSTED>20251226<TRNAMT>-10.00</STMTTRN>"

	candidates, err := Parse(content, "partial.ofx")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "2025-12-26", candidates[0].Date.Format("2006-01-02"))
}

func TestParse_OFXPreambleOnly(t *testing.T) {
	_, err := Parse("OFXHEADER:100\n<OFX></OFX>", "empty.ofx")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse("anything", "statement.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse("anything", "noextension")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
