package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a persisted FX transaction record, keyed by its unique id.
// Once inserted it is never updated by this service.
type Deal struct {
	DealUniqueID    string          `json:"dealUniqueId"`
	FromCurrencyISO string          `json:"fromCurrencyIsoCode"`
	ToCurrencyISO   string          `json:"toCurrencyIsoCode"`
	DealTimestamp   time.Time       `json:"dealTimestamp"`
	DealAmount      decimal.Decimal `json:"dealAmount"`
}

// CandidateRecord is the in-flight representation of one CSV row before it
// becomes a Deal. It lives only for the duration of a single import call.
type CandidateRecord struct {
	DealUniqueID    string
	FromCurrencyISO string
	ToCurrencyISO   string
	DealTimestamp   time.Time
	DealAmount      decimal.Decimal
}

// Deal converts an accepted candidate into the persistent entity.
func (c CandidateRecord) Deal() Deal {
	return Deal{
		DealUniqueID:    c.DealUniqueID,
		FromCurrencyISO: c.FromCurrencyISO,
		ToCurrencyISO:   c.ToCurrencyISO,
		DealTimestamp:   c.DealTimestamp,
		DealAmount:      c.DealAmount,
	}
}

type OutcomeStatus string

const (
	OutcomeAccepted         OutcomeStatus = "accepted"
	OutcomeRejected         OutcomeStatus = "rejected"
	OutcomeSkippedDuplicate OutcomeStatus = "skipped_duplicate"
)

// RowOutcome records what happened to a single data row of a batch.
type RowOutcome struct {
	LineNumber int           `json:"line_number"`
	DealID     string        `json:"deal_id"`
	Status     OutcomeStatus `json:"status"`
	Reason     string        `json:"reason,omitempty"`
}

type BatchStatus string

const (
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusFailed     BatchStatus = "failed"
)

// Batch is the persisted summary of one import call.
type Batch struct {
	ID            string      `json:"id"`
	Status        BatchStatus `json:"status"`
	TotalRows     int         `json:"total_rows"`
	AcceptedCount int         `json:"accepted_count"`
	RejectedCount int         `json:"rejected_count"`
	SkippedCount  int         `json:"skipped_count"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
}

// BatchResult is what one import call hands back to the caller: the accepted
// deals plus the ordered per-row outcome log.
type BatchResult struct {
	BatchID       string       `json:"batch_id"`
	Accepted      []Deal       `json:"accepted"`
	Outcomes      []RowOutcome `json:"outcomes"`
	TotalRows     int          `json:"total_rows"`
	AcceptedCount int          `json:"accepted_count"`
	RejectedCount int          `json:"rejected_count"`
	SkippedCount  int          `json:"skipped_count"`
}
