package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
)

// MemoryStore is an in-memory Repository. Deals are keyed by their unique id;
// an insert never overwrites an existing key.
type MemoryStore struct {
	deals           map[string]domain.Deal
	batches         map[string]*domain.Batch
	outcomes        map[string][]domain.RowOutcome
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		deals:           make(map[string]domain.Deal),
		batches:         make(map[string]*domain.Batch),
		outcomes:        make(map[string][]domain.RowOutcome),
		processedEvents: make(map[string]bool),
	}
}

func (s *MemoryStore) InsertDeal(ctx context.Context, deal domain.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.deals[deal.DealUniqueID]; exists {
		return domain.ErrDuplicateDeal
	}

	s.deals[deal.DealUniqueID] = deal

	return nil
}

func (s *MemoryStore) DealExistsByID(ctx context.Context, dealID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.deals[dealID]

	return exists, nil
}

func (s *MemoryStore) FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deal, exists := s.deals[dealID]
	if !exists {
		return nil, domain.ErrDealNotFound
	}

	return &deal, nil
}

func (s *MemoryStore) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deals := make([]domain.Deal, 0, len(s.deals))
	for _, deal := range s.deals {
		deals = append(deals, deal)
	}

	// Map iteration order is random; keep listings stable.
	sort.Slice(deals, func(i, j int) bool {
		return deals[i].DealUniqueID < deals[j].DealUniqueID
	})

	return deals, nil
}

func (s *MemoryStore) CreateBatch(ctx context.Context, batchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches[batchID] = &domain.Batch{
		ID:        batchID,
		Status:    domain.BatchStatusProcessing,
		CreatedAt: time.Now(),
	}

	s.outcomes[batchID] = []domain.RowOutcome{}

	return nil
}

func (s *MemoryStore) GetBatch(ctx context.Context, batchID string) (*domain.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, exists := s.batches[batchID]
	if !exists {
		return nil, domain.ErrBatchNotFound
	}

	return batch, nil
}

func (s *MemoryStore) FinishBatch(ctx context.Context, batchID string, status domain.BatchStatus, totalRows, accepted, rejected, skipped int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, exists := s.batches[batchID]
	if !exists {
		return domain.ErrBatchNotFound
	}

	batch.Status = status
	batch.TotalRows = totalRows
	batch.AcceptedCount = accepted
	batch.RejectedCount = rejected
	batch.SkippedCount = skipped

	now := time.Now()
	batch.CompletedAt = &now

	return nil
}

func (s *MemoryStore) AddRowOutcome(ctx context.Context, batchID string, outcome domain.RowOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.batches[batchID]; !exists {
		return domain.ErrBatchNotFound
	}

	s.outcomes[batchID] = append(s.outcomes[batchID], outcome)

	return nil
}

func (s *MemoryStore) GetRowOutcomes(ctx context.Context, batchID string, page, perPage int, status *domain.OutcomeStatus) ([]domain.RowOutcome, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.batches[batchID]; !exists {
		return nil, 0, domain.ErrBatchNotFound
	}

	all := s.outcomes[batchID]

	var filtered []domain.RowOutcome
	for _, outcome := range all {
		if status != nil && outcome.Status != *status {
			continue
		}
		filtered = append(filtered, outcome)
	}

	// Audit events arrive out of order from the worker pool.
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].LineNumber < filtered[j].LineNumber
	})

	total := len(filtered)

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= total {
		return []domain.RowOutcome{}, total, nil
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}
