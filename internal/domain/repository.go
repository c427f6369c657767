package domain

import "context"

type Repository interface {
	// Deal operations. InsertDeal must fail with ErrDuplicateDeal when the key
	// already exists, never overwrite. Existence and lookup cover the full
	// persisted history, not just the current batch.
	InsertDeal(ctx context.Context, deal Deal) error
	DealExistsByID(ctx context.Context, dealID string) (bool, error)
	FindDealByID(ctx context.Context, dealID string) (*Deal, error)
	ListDeals(ctx context.Context) ([]Deal, error)

	// Batch tracking
	CreateBatch(ctx context.Context, batchID string) error
	GetBatch(ctx context.Context, batchID string) (*Batch, error)
	FinishBatch(ctx context.Context, batchID string, status BatchStatus, totalRows, accepted, rejected, skipped int) error

	// Row outcome audit log
	AddRowOutcome(ctx context.Context, batchID string, outcome RowOutcome) error
	GetRowOutcomes(ctx context.Context, batchID string, page, perPage int, status *OutcomeStatus) ([]RowOutcome, int, error)

	// Idempotency tracking for audit events
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
