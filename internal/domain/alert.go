package domain

import "time"

// AlertType distinguishes the two detectors.
type AlertType string

const (
	AlertNegativeSpike AlertType = "negative_spike"
	AlertSuddenChange  AlertType = "sudden_change"
)

// Severity grades an alert.
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Alert is an anomaly event emitted by the alert engine.
type Alert struct {
	ID        string          `json:"id"`
	Type      AlertType       `json:"type"`
	Severity  Severity        `json:"severity"`
	Message   string          `json:"message"`
	Keyword   string          `json:"keyword"`
	Timestamp time.Time       `json:"timestamp"`
	Current   SentimentCounts `json:"current"`
	Previous  SentimentCounts `json:"previous,omitempty"`
}
