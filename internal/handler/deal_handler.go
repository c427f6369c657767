package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
	"github.com/clustereddata/fx-deal-warehouse/internal/service"
	"github.com/clustereddata/fx-deal-warehouse/pkg/logger"
	"github.com/labstack/echo/v4"
)

type DealHandler struct {
	service service.DealService
	logger  *logger.Logger
}

func NewDealHandler(service service.DealService, log *logger.Logger) *DealHandler {
	return &DealHandler{
		service: service,
		logger:  log,
	}
}

// Import accepts a multipart CSV upload and runs the batch synchronously. A
// structurally bad file is the client's fault (400, naming the line); a store
// failure is ours (500, no internal detail).
func (h *DealHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling deal import request")

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	result, err := h.service.ImportDeals(ctx, src)
	if err != nil {
		var malformed *domain.MalformedRowError
		if errors.As(err, &malformed) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": malformed.Error(),
				"line":  malformed.Line,
			})
		}
		if errors.Is(err, domain.ErrInvalidCSVFormat) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid CSV format",
			})
		}

		h.logger.Error(ctx, "Failed to import deals",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to import deals",
		})
	}

	h.logger.Info(ctx, "Import successful",
		"batch_id", result.BatchID,
		"accepted", result.AcceptedCount,
	)

	return c.JSON(http.StatusOK, result)
}

func (h *DealHandler) ListDeals(c echo.Context) error {
	ctx := c.Request().Context()

	deals, err := h.service.GetAllDeals(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list deals",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list deals",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"deals": deals,
		"total": len(deals),
	})
}

func (h *DealHandler) GetDealByID(c echo.Context) error {
	ctx := c.Request().Context()

	dealID := c.Param("id")

	deal, err := h.service.GetDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "deal not found",
			})
		}

		h.logger.Error(ctx, "Failed to get deal",
			"deal_id", dealID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get deal",
		})
	}

	return c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) GetImport(c echo.Context) error {
	ctx := c.Request().Context()

	batchID := c.Param("id")

	batch, err := h.service.GetBatch(ctx, batchID)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "import not found",
			})
		}

		h.logger.Error(ctx, "Failed to get import",
			"batch_id", batchID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get import",
		})
	}

	return c.JSON(http.StatusOK, batch)
}

func (h *DealHandler) GetImportRows(c echo.Context) error {
	ctx := c.Request().Context()

	batchID := c.Param("id")

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	var statusFilter *domain.OutcomeStatus
	statusParam := c.QueryParam("status")
	if statusParam != "" {
		status := domain.OutcomeStatus(statusParam)
		switch status {
		case domain.OutcomeAccepted, domain.OutcomeRejected, domain.OutcomeSkippedDuplicate:
			statusFilter = &status
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "status must be accepted, rejected or skipped_duplicate",
			})
		}
	}

	outcomes, total, err := h.service.GetRowOutcomes(ctx, batchID, page, perPage, statusFilter)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "import not found",
			})
		}

		h.logger.Error(ctx, "Failed to get import rows",
			"batch_id", batchID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get import rows",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"batch_id": batchID,
		"items":    outcomes,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}
