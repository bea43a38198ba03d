package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitstop/config"
	"pitstop/infras/otel/mocks"
	catalogMocks "pitstop/internal/domains/catalog/mocks"
	"pitstop/internal/domains/catalog/model"
	"pitstop/internal/domains/catalog/model/dto"
	"pitstop/internal/domains/catalog/service"
	cacheMocks "pitstop/shared/cache/mocks"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
)

func newService(t *testing.T) (service.Catalog, *catalogMocks.MockCategory, *catalogMocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockCategories := catalogMocks.NewMockCategory(ctrl)
	mockServices := catalogMocks.NewMockService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockCategories, mockServices, cfg, mockCache, mocks.NewOtel()), mockCategories, mockServices
}

func adminCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	req := dto.CreateCategoryRequest{Name: "Engine"}

	t.Run("new name", func(t *testing.T) {
		svc, mockCategories, _ := newService(t)

		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockCategories.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, category model.ServiceCategory) error {
				assert.Equal(t, "Engine", category.Name)
				assert.NotEmpty(t, category.ID)

				return nil
			})

		assert.NoError(t, svc.CreateCategory(adminCtx(), req))
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, mockCategories, _ := newService(t)

		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.CreateCategory(adminCtx(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	t.Run("unused category is removed", func(t *testing.T) {
		svc, mockCategories, mockServices := newService(t)

		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockServices.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockCategories.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.DeleteCategory(adminCtx(), "cat-1"))
	})

	t.Run("category with services stays", func(t *testing.T) {
		svc, mockCategories, mockServices := newService(t)

		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockServices.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.DeleteCategory(adminCtx(), "cat-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Contains(t, err.Error(), "category still has services")
	})

	t.Run("missing category", func(t *testing.T) {
		svc, mockCategories, _ := newService(t)

		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.DeleteCategory(adminCtx(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCatalogService_CreateService(t *testing.T) {
	req := dto.CreateServiceRequest{
		Name:       "Oil change",
		CategoryID: "6a0fa3a1-5d79-4f6b-8d53-3f2a6f1f9b10",
		Price:      49.9,
	}

	t.Run("category must exist", func(t *testing.T) {
		svc, mockCategories, _ := newService(t)

		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.CreateService(adminCtx(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "service category does not exist")
	})

	t.Run("valid service", func(t *testing.T) {
		svc, mockCategories, mockServices := newService(t)

		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockServices.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, svcModel model.Service) error {
				assert.Equal(t, req.CategoryID, svcModel.CategoryID)
				assert.Equal(t, 49.9, svcModel.Price)

				return nil
			})

		assert.NoError(t, svc.CreateService(adminCtx(), req))
	})
}

func TestCatalogService_UpdateService(t *testing.T) {
	t.Run("recategorizing checks the target category", func(t *testing.T) {
		svc, mockCategories, mockServices := newService(t)

		mockServices.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockCategories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		req := dto.UpdateServiceRequest{CategoryID: "0d9a2c8e-11f2-4b7a-8a9f-6d5e4c3b2a10"}
		err := svc.UpdateService(adminCtx(), req, "svc-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("price-only update skips the category check", func(t *testing.T) {
		svc, _, mockServices := newService(t)

		mockServices.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockServices.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.UpdateService(adminCtx(), dto.UpdateServiceRequest{Price: 59.9}, "svc-1"))
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.UpdateService(adminCtx(), dto.UpdateServiceRequest{}, "svc-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
