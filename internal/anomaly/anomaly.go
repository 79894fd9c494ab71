// Package anomaly flags suspicious expense transactions. Detection is
// a stateless scan over a ledger snapshot: three independent rules,
// each of which may fire per transaction, so one transaction can carry
// several anomalies. Anomaly IDs are deterministic from rule and
// transaction ID, which makes repeated scans over unchanged data
// produce identical reports.
package anomaly

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/model"
)

// Rules holds the tunable parts of the scan. Zero values are not
// usable; start from DefaultRules.
type Rules struct {
	// CorporateAccountIDs are the accounts whose weekend expenses are
	// off-pattern for a business.
	CorporateAccountIDs []string
	// OutlierHigh flags any expense strictly above it.
	OutlierHigh decimal.Decimal
	// OutlierMedium flags expenses strictly above it that sit in the
	// catch-all category.
	OutlierMedium decimal.Decimal
	// CatchAllCategory is the name of the uncategorized bucket.
	CatchAllCategory string
}

// DefaultRules matches the seeded corporate accounts and the default
// thresholds.
func DefaultRules() Rules {
	return Rules{
		CorporateAccountIDs: []string{"acc_main", "acc_business"},
		OutlierHigh:         decimal.NewFromInt(10000),
		OutlierMedium:       decimal.NewFromInt(3000),
		CatchAllCategory:    "Other",
	}
}

const (
	prefixDuplicate = "dup"
	prefixWeekend   = "week"
	prefixOutlier   = "out"
)

func anomalyID(prefix, transactionID string) string {
	return fmt.Sprintf("%s_%s", prefix, transactionID)
}

// duplicateKey is the composite identity used to group suspected
// duplicates: amount, date, and case/space-insensitive description.
func duplicateKey(t model.Transaction) string {
	return fmt.Sprintf("%s|%s|%s",
		t.Amount.StringFixed(2),
		t.ISODate(),
		strings.ToLower(strings.TrimSpace(t.Description)))
}

// Scan runs all detection rules over the expense transactions of the
// ledger, skipping dismissed transaction IDs. It is pure and
// idempotent; callers re-invoke it after any ledger or dismissal
// change.
func Scan(ledger *model.Ledger, dismissed map[string]bool, rules Rules) []model.Anomaly {
	var expenses []model.Transaction
	for _, t := range ledger.Transactions {
		if t.Type == model.TypeExpense && !dismissed[t.ID] {
			expenses = append(expenses, t)
		}
	}

	corporate := make(map[string]bool, len(rules.CorporateAccountIDs))
	for _, id := range rules.CorporateAccountIDs {
		corporate[id] = true
	}

	var detected []model.Anomaly

	// Duplicates: every member of a group of two or more is flagged
	// individually.
	groups := make(map[string]int)
	for _, t := range expenses {
		groups[duplicateKey(t)]++
	}
	for _, t := range expenses {
		if groups[duplicateKey(t)] < 2 {
			continue
		}
		detected = append(detected, model.Anomaly{
			ID:            anomalyID(prefixDuplicate, t.ID),
			TransactionID: t.ID,
			Type:          model.AnomalyDuplicate,
			Severity:      model.SeverityHigh,
			Message:       "Duplicate payment detected (same amount, date and description).",
		})
	}

	// Weekend spend on a corporate account.
	for _, t := range expenses {
		day := t.Date.Weekday()
		if (day == time.Saturday || day == time.Sunday) && corporate[t.AccountID] {
			detected = append(detected, model.Anomaly{
				ID:            anomalyID(prefixWeekend, t.ID),
				TransactionID: t.ID,
				Type:          model.AnomalyWeekend,
				Severity:      model.SeverityMedium,
				Message:       "Corporate expense recorded on a weekend.",
			})
		}
	}

	// Outliers: the two thresholds are checked in order, first match
	// wins.
	for _, t := range expenses {
		switch {
		case t.Amount.GreaterThan(rules.OutlierHigh):
			detected = append(detected, model.Anomaly{
				ID:            anomalyID(prefixOutlier, t.ID),
				TransactionID: t.ID,
				Type:          model.AnomalyOutlier,
				Severity:      model.SeverityHigh,
				Message:       fmt.Sprintf("Amount of %s is atypical for the company profile.", t.Amount.StringFixed(2)),
			})
		case t.Amount.GreaterThan(rules.OutlierMedium):
			category, ok := ledger.CategoryByID(t.CategoryID)
			if ok && category.Name == rules.CatchAllCategory {
				detected = append(detected, model.Anomaly{
					ID:            anomalyID(prefixOutlier, t.ID),
					TransactionID: t.ID,
					Type:          model.AnomalyOutlier,
					Severity:      model.SeverityMedium,
					Message:       fmt.Sprintf("High amount classified as %q. Consider recategorizing.", rules.CatchAllCategory),
				})
			}
		}
	}

	return detected
}

// Detector owns the session dismissal set on top of the pure Scan.
// The set only grows: there is no undismiss.
type Detector struct {
	rules     Rules
	dismissed map[string]bool
}

// NewDetector creates a Detector with an empty dismissal set.
func NewDetector(rules Rules) *Detector {
	return &Detector{rules: rules, dismissed: make(map[string]bool)}
}

// Dismiss excludes a transaction from future scans. It does not touch
// the ledger.
func (d *Detector) Dismiss(transactionID string) {
	d.dismissed[transactionID] = true
}

// Scan runs the detection rules with the detector's dismissal set.
func (d *Detector) Scan(ledger *model.Ledger) []model.Anomaly {
	return Scan(ledger, d.dismissed, d.rules)
}
