package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeal(id string) domain.Deal {
	return domain.Deal{
		DealUniqueID:    id,
		FromCurrencyISO: "USD",
		ToCurrencyISO:   "EUR",
		DealTimestamp:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		DealAmount:      decimal.RequireFromString("1000.00"),
	}
}

func TestMemoryStore_InsertAndFindDeal(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	deal := testDeal("DEAL001")
	err := store.InsertDeal(ctx, deal)
	require.NoError(t, err)

	found, err := store.FindDealByID(ctx, "DEAL001")
	require.NoError(t, err)
	assert.Equal(t, deal.DealUniqueID, found.DealUniqueID)
	assert.Equal(t, deal.FromCurrencyISO, found.FromCurrencyISO)
	assert.Equal(t, deal.ToCurrencyISO, found.ToCurrencyISO)
	assert.True(t, deal.DealTimestamp.Equal(found.DealTimestamp))
	assert.True(t, deal.DealAmount.Equal(found.DealAmount))
}

func TestMemoryStore_InsertDuplicateDeal(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.InsertDeal(ctx, testDeal("DEAL001"))
	require.NoError(t, err)

	other := testDeal("DEAL001")
	other.FromCurrencyISO = "GBP"

	err = store.InsertDeal(ctx, other)
	assert.ErrorIs(t, err, domain.ErrDuplicateDeal)

	// The original deal must not be overwritten.
	found, err := store.FindDealByID(ctx, "DEAL001")
	require.NoError(t, err)
	assert.Equal(t, "USD", found.FromCurrencyISO)
}

func TestMemoryStore_FindDeal_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.FindDealByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrDealNotFound)
}

func TestMemoryStore_DealExistsByID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	exists, err := store.DealExistsByID(ctx, "DEAL001")
	require.NoError(t, err)
	assert.False(t, exists)

	err = store.InsertDeal(ctx, testDeal("DEAL001"))
	require.NoError(t, err)

	exists, err = store.DealExistsByID(ctx, "DEAL001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryStore_ListDeals(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	deals, err := store.ListDeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, deals)

	require.NoError(t, store.InsertDeal(ctx, testDeal("DEAL002")))
	require.NoError(t, store.InsertDeal(ctx, testDeal("DEAL001")))
	require.NoError(t, store.InsertDeal(ctx, testDeal("DEAL003")))

	deals, err = store.ListDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 3)

	// Stable ordering by id.
	assert.Equal(t, "DEAL001", deals[0].DealUniqueID)
	assert.Equal(t, "DEAL002", deals[1].DealUniqueID)
	assert.Equal(t, "DEAL003", deals[2].DealUniqueID)
}

func TestMemoryStore_BatchLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.CreateBatch(ctx, "batch-1")
	require.NoError(t, err)

	batch, err := store.GetBatch(ctx, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BatchStatusProcessing, batch.Status)
	assert.Nil(t, batch.CompletedAt)

	err = store.FinishBatch(ctx, "batch-1", domain.BatchStatusCompleted, 10, 7, 2, 1)
	require.NoError(t, err)

	batch, err = store.GetBatch(ctx, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BatchStatusCompleted, batch.Status)
	assert.Equal(t, 10, batch.TotalRows)
	assert.Equal(t, 7, batch.AcceptedCount)
	assert.Equal(t, 2, batch.RejectedCount)
	assert.Equal(t, 1, batch.SkippedCount)
	assert.NotNil(t, batch.CompletedAt)
}

func TestMemoryStore_GetBatch_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetBatch(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}

func TestMemoryStore_FinishBatch_NotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.FinishBatch(context.Background(), "nonexistent", domain.BatchStatusCompleted, 0, 0, 0, 0)
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}

func TestMemoryStore_AddRowOutcome_BatchNotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.AddRowOutcome(context.Background(), "nonexistent", domain.RowOutcome{LineNumber: 1})
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}

func TestMemoryStore_GetRowOutcomes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateBatch(ctx, "batch-1"))

	require.NoError(t, store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
		LineNumber: 1, DealID: "DEAL001", Status: domain.OutcomeAccepted,
	}))
	require.NoError(t, store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
		LineNumber: 2, DealID: "DEAL002", Status: domain.OutcomeRejected, Reason: "deal amount must be greater than 0",
	}))
	require.NoError(t, store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
		LineNumber: 3, DealID: "DEAL001", Status: domain.OutcomeSkippedDuplicate, Reason: "deal id already exists",
	}))

	outcomes, total, err := store.GetRowOutcomes(ctx, "batch-1", 1, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, outcomes, 3)
}

func TestMemoryStore_GetRowOutcomes_WithStatusFilter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateBatch(ctx, "batch-1"))

	require.NoError(t, store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
		LineNumber: 1, Status: domain.OutcomeAccepted,
	}))
	require.NoError(t, store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
		LineNumber: 2, Status: domain.OutcomeRejected,
	}))

	rejected := domain.OutcomeRejected
	outcomes, total, err := store.GetRowOutcomes(ctx, "batch-1", 1, 10, &rejected)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.OutcomeRejected, outcomes[0].Status)
}

func TestMemoryStore_GetRowOutcomes_SortedByLine(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateBatch(ctx, "batch-1"))

	// Audit workers may record outcomes out of order.
	for _, line := range []int{3, 1, 2} {
		require.NoError(t, store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
			LineNumber: line, Status: domain.OutcomeAccepted,
		}))
	}

	outcomes, _, err := store.GetRowOutcomes(ctx, "batch-1", 1, 10, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, 1, outcomes[0].LineNumber)
	assert.Equal(t, 2, outcomes[1].LineNumber)
	assert.Equal(t, 3, outcomes[2].LineNumber)
}

func TestMemoryStore_GetRowOutcomes_Pagination(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateBatch(ctx, "batch-1"))

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
			LineNumber: i, Status: domain.OutcomeRejected,
		}))
	}

	outcomes, total, err := store.GetRowOutcomes(ctx, "batch-1", 1, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, outcomes, 2)

	outcomes, total, err = store.GetRowOutcomes(ctx, "batch-1", 3, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, outcomes, 1)

	outcomes, total, err = store.GetRowOutcomes(ctx, "batch-1", 4, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, outcomes)
}

func TestMemoryStore_EventIdempotency(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	processed, err := store.IsEventProcessed(ctx, "event-1")
	require.NoError(t, err)
	assert.False(t, processed)

	err = store.MarkEventProcessed(ctx, "event-1")
	require.NoError(t, err)

	processed, err = store.IsEventProcessed(ctx, "event-1")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestMemoryStore_Concurrency(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateBatch(ctx, "batch-1"))

	done := make(chan bool)
	for i := 0; i < 100; i++ {
		go func(id int) {
			_ = store.InsertDeal(ctx, testDeal(fmt.Sprintf("DEAL%03d", id)))

			_ = store.AddRowOutcome(ctx, "batch-1", domain.RowOutcome{
				LineNumber: id + 1,
				Status:     domain.OutcomeAccepted,
			})

			_, _ = store.ListDeals(ctx)

			done <- true
		}(i)
	}

	for i := 0; i < 100; i++ {
		<-done
	}

	deals, err := store.ListDeals(ctx)
	require.NoError(t, err)
	assert.Len(t, deals, 100)

	_, total, err := store.GetRowOutcomes(ctx, "batch-1", 1, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, total)
}
