package eventbus

import (
	"context"
	"fmt"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
	"github.com/clustereddata/fx-deal-warehouse/pkg/logger"
)

// AuditConsumer persists row outcomes published by the import pipeline so the
// outcome history endpoint can serve them. Consumption is idempotent on event
// id because the bus retries on failure.
type AuditConsumer struct {
	repo        domain.Repository
	logger      *logger.Logger
	workerCount int
}

func NewAuditConsumer(repo domain.Repository, log *logger.Logger, workerCount int) *AuditConsumer {
	return &AuditConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ac *AuditConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := ac.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		ac.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(RowOutcomeEvent)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for row outcome event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type")
	}

	ctx = logger.WithBatchID(ctx, payload.BatchID)

	err = ac.repo.AddRowOutcome(ctx, payload.BatchID, payload.Outcome)
	if err != nil {
		ac.logger.Error(ctx, "Failed to record row outcome",
			"event_id", event.ID,
			"line_number", payload.Outcome.LineNumber,
			"error", err,
		)
		return err
	}

	err = ac.repo.MarkEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	ac.logger.Debug(ctx, "Row outcome recorded",
		"event_id", event.ID,
		"line_number", payload.Outcome.LineNumber,
		"status", payload.Outcome.Status,
	)

	return nil
}

func (ac *AuditConsumer) GetWorkerCount() int {
	return ac.workerCount
}
