package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsync "github.com/orderman/backend/internal/application/sync"
	"github.com/orderman/backend/internal/domain/storefront"
	"github.com/orderman/backend/internal/interfaces/http/dto"
)

type stubSyncer struct {
	result *appsync.SyncResult
	err    error

	gotStart string
	gotEnd   string
}

func (s *stubSyncer) SyncOrders(_ context.Context, startDate, endDate string) (*appsync.SyncResult, error) {
	s.gotStart = startDate
	s.gotEnd = endDate
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newSyncRouter(syncer OrderSyncer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")
	NewSyncHandler(syncer).RegisterRoutes(api)
	return engine
}

func postSyncOrders(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storefront/sync-orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSyncHandler_SyncOrders(t *testing.T) {
	runID := uuid.New()
	syncer := &stubSyncer{
		result: &appsync.SyncResult{
			RunID:          runID,
			ProcessedCount: 3,
			OutputPath:     "orders/24.06.2024 order",
			Duration:       1500 * time.Millisecond,
		},
	}
	engine := newSyncRouter(syncer)

	w := postSyncOrders(t, engine, `{"start_date":"2024-06-20","end_date":"2024-06-24"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-06-20", syncer.gotStart)
	assert.Equal(t, "2024-06-24", syncer.gotEnd)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, runID.String(), data["run_id"])
	assert.Equal(t, float64(3), data["processed_count"])
	assert.Equal(t, "orders/24.06.2024 order", data["output_path"])
	assert.Equal(t, float64(1500), data["duration_ms"])
}

func TestSyncHandler_SyncOrders_MissingFields(t *testing.T) {
	syncer := &stubSyncer{}
	engine := newSyncRouter(syncer)

	w := postSyncOrders(t, engine, `{"start_date":"2024-06-20"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	// Binding failure must not reach the service
	assert.Empty(t, syncer.gotStart)
}

func TestSyncHandler_SyncOrders_InvalidJSON(t *testing.T) {
	engine := newSyncRouter(&stubSyncer{})

	w := postSyncOrders(t, engine, `{not-json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncHandler_SyncOrders_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid date range",
			err:            fmt.Errorf("%w: start 2024-06-24 is after end 2024-06-20", storefront.ErrInvalidDateRange),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidInput,
		},
		{
			name:           "missing shipping address",
			err:            fmt.Errorf("sync: order #1001: %w", storefront.ErrMissingShippingAddress),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodeIncompleteOrder,
		},
		{
			name:           "source unavailable",
			err:            fmt.Errorf("%w: connection refused", storefront.ErrSourceUnavailable),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   dto.ErrCodeUpstreamUnavailable,
		},
		{
			name:           "source request rejected",
			err:            fmt.Errorf("%w: status 429", storefront.ErrSourceRequestFailed),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   dto.ErrCodeUpstreamRejected,
		},
		{
			name:           "source invalid response",
			err:            fmt.Errorf("%w: missing data", storefront.ErrSourceInvalidResponse),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   dto.ErrCodeUpstreamResponse,
		},
		{
			name:           "source not configured",
			err:            storefront.ErrSourceNotConfigured,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodeInvalidState,
		},
		{
			name:           "unexpected error",
			err:            fmt.Errorf("disk full"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newSyncRouter(&stubSyncer{err: tt.err})

			w := postSyncOrders(t, engine, `{"start_date":"2024-06-20","end_date":"2024-06-24"}`)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}
