package eventbus

import (
	"time"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
)

type EventType string

const (
	EventTypeRowOutcome EventType = "row_outcome"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// RowOutcomeEvent mirrors a decision the import pipeline already made; the
// consumer only persists it to the audit log.
type RowOutcomeEvent struct {
	BatchID string            `json:"batch_id"`
	Outcome domain.RowOutcome `json:"outcome"`
}
