// Package receipt pulls transaction fields out of receipt text. The
// OCR step is a collaborator; this package only applies patterns to
// whatever text came back.
package receipt

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/money"
)

// FallbackDescription is used when no usable line survives stripping.
const FallbackDescription = "Recibo Digital Scan"

// TextExtractor turns a receipt image into raw text. Implementations
// wrap an OCR engine or service.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// Fields holds whatever could be extracted from a receipt. Zero
// values mean the field was not found; callers leave their form
// fields untouched in that case.
type Fields struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

var (
	priceRe = regexp.MustCompile(`(?i)R?\$?\s?(\d{1,3}(?:\.\d{3})*,\d{2})`)
	dateRe  = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	noiseRe = regexp.MustCompile(`(?i)CNPJ|CPF|NOTA|FISCAL`)
)

// Extract applies the receipt heuristics to raw text: the largest
// BRL-formatted amount, the first DD/MM/YYYY date, and the first
// non-trivial line as the description.
func Extract(text string) Fields {
	fields := Fields{Amount: decimal.Zero}

	for _, m := range priceRe.FindAllStringSubmatch(text, -1) {
		val, err := money.ParseAmount(m[1])
		if err != nil {
			continue
		}
		if val.GreaterThan(fields.Amount) {
			fields.Amount = val
		}
	}

	if m := dateRe.FindStringSubmatch(text); m != nil {
		if d, err := money.ParseDateToken(m[0]); err == nil {
			fields.Date = d
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if len(strings.TrimSpace(line)) <= 2 {
			continue
		}
		desc := strings.TrimSpace(noiseRe.ReplaceAllString(line, ""))
		if desc == "" {
			desc = FallbackDescription
		}
		fields.Description = desc
		break
	}

	return fields
}
