package statement

import (
	"strings"

	"github.com/fluxozen/fluxozen/internal/model"
	"github.com/fluxozen/fluxozen/internal/money"
)

// parseCSV reads delimited statement rows. Bank exports disagree on
// almost everything, so detection is positional:
//
//   - separator: ";" when the first line contains one, else ","
//   - header: skipped unless the first field of line 1 is a date token
//   - date: column 0
//   - amount: column 1 when it parses as a number, else the last column
//
// Rows with fewer than two columns, an unparsable amount, or an
// unparsable date are dropped.
func parseCSV(content string) ([]model.Candidate, error) {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	separator := ","
	if strings.Contains(lines[0], ";") {
		separator = ";"
	}

	start := 1
	if money.LooksLikeDate(strings.Split(lines[0], separator)[0]) {
		start = 0
	}

	var candidates []model.Candidate
	for _, line := range lines[start:] {
		columns := strings.Split(line, separator)
		if len(columns) < 2 {
			continue
		}

		raw := strings.TrimSpace(strings.ReplaceAll(columns[1], money.CurrencyMarker, ""))
		if !money.IsAmount(raw) {
			raw = strings.TrimSpace(strings.ReplaceAll(columns[len(columns)-1], money.CurrencyMarker, ""))
		}

		amount, err := money.ParseAmount(raw)
		if err != nil {
			continue
		}
		date, err := money.ParseDateToken(columns[0])
		if err != nil {
			continue
		}

		candidates = append(candidates, model.Candidate{
			Date:        date,
			Description: ImportedDescription,
			Amount:      amount,
		})
	}
	return candidates, nil
}
