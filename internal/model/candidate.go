package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candidate is a parsed-but-uncommitted statement row awaiting
// category and account assignment. Unlike Transaction, its amount is
// signed: negative leans expense, non-negative leans income.
type Candidate struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // signed
}
