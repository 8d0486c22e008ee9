package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appsync "github.com/orderman/backend/internal/application/sync"
	"github.com/orderman/backend/internal/domain/storefront"
	"github.com/orderman/backend/internal/infrastructure/logger"
	"github.com/orderman/backend/internal/interfaces/http/dto"
)

// OrderSyncer runs a storefront order sync for a date range.
type OrderSyncer interface {
	SyncOrders(ctx context.Context, startDate, endDate string) (*appsync.SyncResult, error)
}

// SyncHandler handles storefront order sync endpoints
type SyncHandler struct {
	BaseHandler
	syncer OrderSyncer
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncer OrderSyncer) *SyncHandler {
	return &SyncHandler{syncer: syncer}
}

// SyncOrdersRequest represents the sync request payload
type SyncOrdersRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// SyncOrdersResponse represents the sync result payload
type SyncOrdersResponse struct {
	RunID          string `json:"run_id"`
	ProcessedCount int    `json:"processed_count"`
	OutputPath     string `json:"output_path"`
	DurationMS     int64  `json:"duration_ms"`
}

// SyncOrders pulls all orders in the date range from the storefront and
// materializes them into the local folder tree.
func (h *SyncHandler) SyncOrders(c *gin.Context) {
	var req SyncOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.syncer.SyncOrders(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		log := logger.GetGinLogger(c)
		log.Error("Order sync failed",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
			zap.Error(err),
		)
		h.ErrorWithCode(c, syncErrorCode(err), err.Error())
		return
	}

	h.Success(c, SyncOrdersResponse{
		RunID:          result.RunID.String(),
		ProcessedCount: result.ProcessedCount,
		OutputPath:     result.OutputPath,
		DurationMS:     result.Duration.Milliseconds(),
	})
}

// syncErrorCode maps domain errors to API error codes.
func syncErrorCode(err error) string {
	switch {
	case errors.Is(err, storefront.ErrInvalidDateRange):
		return dto.ErrCodeInvalidInput
	case errors.Is(err, storefront.ErrMissingShippingAddress):
		return dto.ErrCodeIncompleteOrder
	case errors.Is(err, storefront.ErrSourceUnavailable):
		return dto.ErrCodeUpstreamUnavailable
	case errors.Is(err, storefront.ErrSourceRequestFailed):
		return dto.ErrCodeUpstreamRejected
	case errors.Is(err, storefront.ErrSourceInvalidResponse):
		return dto.ErrCodeUpstreamResponse
	case errors.Is(err, storefront.ErrSourceNotConfigured):
		return dto.ErrCodeInvalidState
	default:
		return dto.ErrCodeInternal
	}
}

// RegisterRoutes registers storefront sync routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sf := rg.Group("/storefront")
	{
		sf.POST("/sync-orders", h.SyncOrders)
	}
}
