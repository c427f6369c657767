package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
	"github.com/clustereddata/fx-deal-warehouse/internal/eventbus"
	"github.com/clustereddata/fx-deal-warehouse/pkg/logger"
)

// BatchImporter drives one import batch to completion.
type BatchImporter interface {
	ImportBatch(ctx context.Context, batchID string, reader io.Reader) (*domain.BatchResult, error)
}

// Importer is the synchronous import pipeline: read header, then per row
// parse -> validate -> dedup -> insert. Semantic failures skip the row;
// structural failures and store failures abort the batch. Line numbers in
// outcomes count data rows only, starting at 1 after the header.
type Importer struct {
	repo              domain.Repository
	eventBus          eventbus.EventBus
	validator         *recordValidator
	logger            *logger.Logger
	normalizeCurrency bool
}

func NewImporter(repo domain.Repository, bus eventbus.EventBus, log *logger.Logger, normalizeCurrency bool) *Importer {
	return &Importer{
		repo:              repo,
		eventBus:          bus,
		validator:         newRecordValidator(normalizeCurrency),
		logger:            log,
		normalizeCurrency: normalizeCurrency,
	}
}

func (im *Importer) ImportBatch(ctx context.Context, batchID string, reader io.Reader) (*domain.BatchResult, error) {
	ctx = logger.WithBatchID(ctx, batchID)

	im.logger.Info(ctx, "Starting deal import")

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1 // field count is checked per row by the parser

	result := &domain.BatchResult{
		BatchID:  batchID,
		Accepted: []domain.Deal{},
		Outcomes: []domain.RowOutcome{},
	}

	// Header row is consumed and discarded unconditionally. A header-only or
	// zero-byte stream is a valid empty batch.
	if _, err := csvReader.Read(); err != nil {
		if err == io.EOF {
			im.finishBatch(ctx, batchID, domain.BatchStatusCompleted, result)
			im.logger.Info(ctx, "Empty input, nothing to import")
			return result, nil
		}
		im.finishBatch(ctx, batchID, domain.BatchStatusFailed, result)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCSVFormat, err)
	}

	gate := newDedupGate(im.repo)
	lineNumber := 0

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			im.finishBatch(ctx, batchID, domain.BatchStatusFailed, result)
			return nil, &domain.MalformedRowError{Line: lineNumber + 1, Err: err}
		}

		lineNumber++
		result.TotalRows++

		candidate, err := parseRecord(record, lineNumber)
		if err != nil {
			im.logger.Error(ctx, "Malformed row, aborting batch",
				"line", lineNumber,
				"error", err,
			)
			im.finishBatch(ctx, batchID, domain.BatchStatusFailed, result)
			return nil, err
		}

		if im.normalizeCurrency {
			candidate.FromCurrencyISO = strings.ToUpper(candidate.FromCurrencyISO)
			candidate.ToCurrencyISO = strings.ToUpper(candidate.ToCurrencyISO)
		}

		outcome, err := im.processCandidate(ctx, gate, candidate, lineNumber)
		if err != nil {
			im.logger.Error(ctx, "Store failure, aborting batch",
				"line", lineNumber,
				"deal_id", candidate.DealUniqueID,
				"error", err,
			)
			im.finishBatch(ctx, batchID, domain.BatchStatusFailed, result)
			return nil, err
		}

		switch outcome.Status {
		case domain.OutcomeAccepted:
			result.Accepted = append(result.Accepted, candidate.Deal())
			result.AcceptedCount++
		case domain.OutcomeRejected:
			result.RejectedCount++
		case domain.OutcomeSkippedDuplicate:
			result.SkippedCount++
		}

		result.Outcomes = append(result.Outcomes, outcome)
		im.publishOutcome(ctx, batchID, outcome)
	}

	im.finishBatch(ctx, batchID, domain.BatchStatusCompleted, result)

	im.logger.Info(ctx, "Deal import completed",
		"total_rows", result.TotalRows,
		"accepted", result.AcceptedCount,
		"rejected", result.RejectedCount,
		"skipped", result.SkippedCount,
	)

	return result, nil
}

// processCandidate decides the outcome for one parsed row. A returned error
// means the store failed and the batch must abort.
func (im *Importer) processCandidate(ctx context.Context, gate *dedupGate, candidate domain.CandidateRecord, lineNumber int) (domain.RowOutcome, error) {
	outcome := domain.RowOutcome{
		LineNumber: lineNumber,
		DealID:     candidate.DealUniqueID,
	}

	if violations := im.validator.Validate(candidate); len(violations) > 0 {
		im.logger.Warn(ctx, "Row rejected",
			"line", lineNumber,
			"deal_id", candidate.DealUniqueID,
			"violations", violations,
		)
		outcome.Status = domain.OutcomeRejected
		outcome.Reason = joinViolations(violations)
		return outcome, nil
	}

	duplicate, err := gate.Check(ctx, candidate.DealUniqueID)
	if err != nil {
		return outcome, err
	}
	if duplicate {
		im.logger.Debug(ctx, "Duplicate deal skipped",
			"line", lineNumber,
			"deal_id", candidate.DealUniqueID,
		)
		outcome.Status = domain.OutcomeSkippedDuplicate
		outcome.Reason = "deal id already exists"
		return outcome, nil
	}

	err = im.repo.InsertDeal(ctx, candidate.Deal())
	if errors.Is(err, domain.ErrDuplicateDeal) {
		// The gate should have caught this; the store refusing the key is the
		// last line of defense against overwrites.
		outcome.Status = domain.OutcomeSkippedDuplicate
		outcome.Reason = "deal id already exists"
		return outcome, nil
	}
	if err != nil {
		return outcome, err
	}

	gate.MarkAccepted(candidate.DealUniqueID)
	outcome.Status = domain.OutcomeAccepted

	return outcome, nil
}

func (im *Importer) publishOutcome(ctx context.Context, batchID string, outcome domain.RowOutcome) {
	if im.eventBus == nil {
		return
	}

	event := eventbus.Event{
		ID:   fmt.Sprintf("%s-%d", batchID, outcome.LineNumber),
		Type: eventbus.EventTypeRowOutcome,
		Payload: eventbus.RowOutcomeEvent{
			BatchID: batchID,
			Outcome: outcome,
		},
		Timestamp: time.Now(),
	}

	if err := im.eventBus.Publish(ctx, event); err != nil {
		im.logger.Error(ctx, "Failed to publish row outcome event",
			"event_id", event.ID,
			"error", err,
		)
	}
}

func (im *Importer) finishBatch(ctx context.Context, batchID string, status domain.BatchStatus, result *domain.BatchResult) {
	err := im.repo.FinishBatch(ctx, batchID, status,
		result.TotalRows, result.AcceptedCount, result.RejectedCount, result.SkippedCount)
	if err != nil {
		im.logger.Error(ctx, "Failed to finish batch record",
			"status", status,
			"error", err,
		)
	}
}
