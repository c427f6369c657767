package service

import (
	"context"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
)

// dedupGate rejects deal ids that already exist in the store or were accepted
// earlier in the same batch. The in-batch set is needed because the store is
// only consulted once per row; without it a file repeating an id would pass
// the existence check twice. One gate per import call.
type dedupGate struct {
	repo domain.Repository
	seen map[string]struct{}
}

func newDedupGate(repo domain.Repository) *dedupGate {
	return &dedupGate{
		repo: repo,
		seen: make(map[string]struct{}),
	}
}

// Check reports whether dealID is a duplicate. Store errors propagate.
func (g *dedupGate) Check(ctx context.Context, dealID string) (bool, error) {
	if _, ok := g.seen[dealID]; ok {
		return true, nil
	}

	exists, err := g.repo.DealExistsByID(ctx, dealID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// MarkAccepted records an id accepted earlier in this batch.
func (g *dedupGate) MarkAccepted(dealID string) {
	g.seen[dealID] = struct{}{}
}
