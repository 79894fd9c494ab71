package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/model"
)

var (
	ofxDateRe   = regexp.MustCompile(`<DTPOSTED>(\d{8})`)
	ofxAmountRe = regexp.MustCompile(`<TRNAMT>([-+]?\d+(\.\d+)?)`)
)

// parseOFX extracts transactions from OFX content by splitting on the
// <STMTTRN> tag. Real-world OFX is SGML-ish and frequently unclosed,
// so a structured XML parse is not attempted; segments missing either
// a posted date or an amount are dropped.
func parseOFX(content string) ([]model.Candidate, error) {
	segments := strings.Split(content, "<STMTTRN>")
	if len(segments) < 2 {
		return nil, nil
	}

	var candidates []model.Candidate
	for _, segment := range segments[1:] { // segment 0 is the preamble
		dateMatch := ofxDateRe.FindStringSubmatch(segment)
		amountMatch := ofxAmountRe.FindStringSubmatch(segment)
		if dateMatch == nil || amountMatch == nil {
			continue
		}

		date, err := time.ParseInLocation("20060102", dateMatch[1], time.UTC)
		if err != nil {
			continue
		}
		amount, err := decimal.NewFromString(amountMatch[1])
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
