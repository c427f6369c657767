package service

import (
	"context"
	"io"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
	"github.com/clustereddata/fx-deal-warehouse/pkg/logger"
	"github.com/google/uuid"
)

type DealService interface {
	ImportDeals(ctx context.Context, reader io.Reader) (*domain.BatchResult, error)
	GetAllDeals(ctx context.Context) ([]domain.Deal, error)
	GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error)
	GetBatch(ctx context.Context, batchID string) (*domain.Batch, error)
	GetRowOutcomes(ctx context.Context, batchID string, page, perPage int, status *domain.OutcomeStatus) ([]domain.RowOutcome, int, error)
}

type dealService struct {
	repo     domain.Repository
	importer BatchImporter
	logger   *logger.Logger
}

func NewDealService(repo domain.Repository, importer BatchImporter, log *logger.Logger) DealService {
	return &dealService{
		repo:     repo,
		importer: importer,
		logger:   log,
	}
}

// ImportDeals runs one batch to completion before returning. The caller is
// blocked until the stream is exhausted or the batch aborts.
func (s *dealService) ImportDeals(ctx context.Context, reader io.Reader) (*domain.BatchResult, error) {
	batchID := uuid.New().String()

	ctx = logger.WithBatchID(ctx, batchID)

	s.logger.Info(ctx, "Creating batch record")

	if err := s.repo.CreateBatch(ctx, batchID); err != nil {
		s.logger.Error(ctx, "Failed to create batch",
			"error", err,
		)
		return nil, err
	}

	result, err := s.importer.ImportBatch(ctx, batchID, reader)
	if err != nil {
		s.logger.Error(ctx, "Batch import failed",
			"error", err,
		)
		return nil, err
	}

	return result, nil
}

func (s *dealService) GetAllDeals(ctx context.Context) ([]domain.Deal, error) {
	deals, err := s.repo.ListDeals(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to list deals",
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Deals listed",
		"count", len(deals),
	)

	return deals, nil
}

func (s *dealService) GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	deal, err := s.repo.FindDealByID(ctx, dealID)
	if err != nil {
		if err != domain.ErrDealNotFound {
			s.logger.Error(ctx, "Failed to find deal",
				"deal_id", dealID,
				"error", err,
			)
		}
		return nil, err
	}

	return deal, nil
}

func (s *dealService) GetBatch(ctx context.Context, batchID string) (*domain.Batch, error) {
	ctx = logger.WithBatchID(ctx, batchID)

	batch, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		if err != domain.ErrBatchNotFound {
			s.logger.Error(ctx, "Failed to get batch",
				"error", err,
			)
		}
		return nil, err
	}

	return batch, nil
}

func (s *dealService) GetRowOutcomes(ctx context.Context, batchID string, page, perPage int, status *domain.OutcomeStatus) ([]domain.RowOutcome, int, error) {
	ctx = logger.WithBatchID(ctx, batchID)

	s.logger.Debug(ctx, "Getting row outcomes",
		"page", page,
		"per_page", perPage,
		"status", status,
	)

	outcomes, total, err := s.repo.GetRowOutcomes(ctx, batchID, page, perPage, status)
	if err != nil {
		if err != domain.ErrBatchNotFound {
			s.logger.Error(ctx, "Failed to get row outcomes",
				"error", err,
			)
		}
		return nil, 0, err
	}

	return outcomes, total, nil
}
