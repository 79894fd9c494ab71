package model

// AnomalyType names the detection rule that flagged a transaction.
type AnomalyType string

const (
	AnomalyDuplicate AnomalyType = "DUPLICATE"
	AnomalyWeekend   AnomalyType = "WEEKEND"
	AnomalyOutlier   AnomalyType = "OUTLIER"
)

// Severity ranks how urgently a flagged transaction deserves review.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// Anomaly is a flagged transaction surfaced for manual audit. Anomalies
// are derived and ephemeral: rescanning unchanged data produces the
// same set with the same IDs. A transaction may carry more than one.
type Anomaly struct {
	ID            string // deterministic: "{prefix}_{transactionID}"
	TransactionID string
	Type          AnomalyType
	Severity      Severity
	Message       string
}
