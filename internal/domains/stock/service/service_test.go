package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitstop/config"
	"pitstop/infras/otel/mocks"
	stockMocks "pitstop/internal/domains/stock/mocks"
	"pitstop/internal/domains/stock/model"
	"pitstop/internal/domains/stock/model/dto"
	"pitstop/internal/domains/stock/repository"
	"pitstop/internal/domains/stock/service"
	cacheMocks "pitstop/shared/cache/mocks"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
)

func newService(t *testing.T) (service.Stock, *stockMocks.MockStock) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := stockMocks.NewMockStock(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.LowStockThreshold = 5

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo
}

func actorCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestStockService_RecordChange(t *testing.T) {
	t.Run("usage is applied through the ledger", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			ApplyChange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, change model.StockChange) error {
				assert.Equal(t, "stock-1", change.StockID)
				assert.Equal(t, model.OperationUsage, change.Operation)
				assert.Equal(t, 3, change.Change)
				assert.Equal(t, -3, change.Delta())

				return nil
			})

		req := dto.RecordChangeRequest{Change: 3, Operation: model.OperationUsage}
		assert.NoError(t, svc.RecordChange(actorCtx("admin-1"), req, "stock-1"))
	})

	t.Run("restock delta is positive", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			ApplyChange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, change model.StockChange) error {
				assert.Equal(t, 10, change.Delta())

				return nil
			})

		req := dto.RecordChangeRequest{Change: 10, Operation: model.OperationRestock}
		assert.NoError(t, svc.RecordChange(actorCtx("admin-1"), req, "stock-1"))
	})

	t.Run("overdraw maps to conflict", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().ApplyChange(gomock.Any(), gomock.Any()).Return(repository.ErrInsufficientStock)

		req := dto.RecordChangeRequest{Change: 100, Operation: model.OperationUsage}
		err := svc.RecordChange(actorCtx("admin-1"), req, "stock-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing stock", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		req := dto.RecordChangeRequest{Change: 1, Operation: model.OperationRestock}
		err := svc.RecordChange(actorCtx("admin-1"), req, "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestStockService_Analytics(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().
		OverallTotals(gomock.Any(), 5).
		Return(model.OverallTotals{TotalValue: 1500, TotalItems: 42, LowStockItems: 2}, nil)

	mockRepo.EXPECT().
		CategoryTotals(gomock.Any()).
		Return([]model.CategoryTotals{
			{Category: "Engine Oil", TotalItems: 30, TotalValue: 900},
			{Category: "Brake", TotalItems: 12, TotalValue: 600},
		}, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Stock{
			{ID: "stock-1", Type: "5W-30", Category: "Engine Oil", Price: 30, Quantity: 2},
		}, nil)

	res, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(1500), res.Overall.TotalValue)
	assert.Equal(t, 42, res.Overall.TotalItems)
	assert.Equal(t, 2, res.Overall.LowStockItems)
	require.Len(t, res.ByCategory, 2)
	assert.Equal(t, "Engine Oil", res.ByCategory[0].Category)
	require.Len(t, res.LowStockItemsList, 1)
	assert.Equal(t, "stock-1", res.LowStockItemsList[0].ID)
}

func TestStockService_History(t *testing.T) {
	t.Run("week uses day buckets over the last seven days", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			History(gomock.Any(), gomock.Any(), "YYYY-MM-DD").
			DoAndReturn(func(_ context.Context, since time.Time, _ string) ([]model.HistoryRow, error) {
				assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, time.Hour)

				return []model.HistoryRow{{
					Date:        "2026-08-25",
					Operation:   model.OperationUsage,
					TotalChange: 4,
					StockID:     "stock-1",
				}}, nil
			})

		res, err := svc.History(context.Background(), constant.TimeframeWeek)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "2026-08-25", res[0].Date)
	})

	t.Run("year uses month buckets", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			History(gomock.Any(), gomock.Any(), "YYYY-MM").
			Return([]model.HistoryRow{}, nil)

		_, err := svc.History(context.Background(), constant.TimeframeYear)
		assert.NoError(t, err)
	})

	t.Run("empty timeframe defaults to month", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			History(gomock.Any(), gomock.Any(), "YYYY-MM-DD").
			Return([]model.HistoryRow{}, nil)

		_, err := svc.History(context.Background(), "")
		assert.NoError(t, err)
	})

	t.Run("unknown timeframe is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.History(context.Background(), "decade")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestStockService_Update(t *testing.T) {
	t.Run("descriptive fields update", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.NotContains(t, fields, model.FieldQuantity)

				return nil
			})

		req := dto.UpdateStockRequest{Price: 35}
		assert.NoError(t, svc.Update(actorCtx("admin-1"), req, "stock-1"))
	})

	t.Run("empty request is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Update(actorCtx("admin-1"), dto.UpdateStockRequest{}, "stock-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
