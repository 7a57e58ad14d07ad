package events

import "time"

const PayrollProcessedTopic = "payroll.run.completed.v1"

type PayrollProcessedEvent struct {
	EventType      string    `json:"event_type"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	ProcessedCount int       `json:"processed_count"`
	SkippedCount   int       `json:"skipped_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}
