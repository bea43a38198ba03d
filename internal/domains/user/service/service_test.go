package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitstop/config"
	"pitstop/infras/otel/mocks"
	userMocks "pitstop/internal/domains/user/mocks"
	"pitstop/internal/domains/user/model"
	"pitstop/internal/domains/user/model/dto"
	"pitstop/internal/domains/user/service"
	cacheMocks "pitstop/shared/cache/mocks"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
	gModel "pitstop/shared/model"
	"pitstop/shared/password"
	"pitstop/shared/timezone"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func roleCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func testUser(id, role string) model.User {
	return model.User{
		ID:            id,
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		ContactNumber: "08123456789",
		Role:          role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	hashed, err := password.Hash("old-password")
	require.NoError(t, err)

	req := dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password-123",
	}

	t.Run("customer changes their own password", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		user := testUser("user-1", constant.RoleUser)
		user.Password = hashed

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				newHash, _ := fields[model.FieldPassword].(string)
				assert.NoError(t, password.Verify("new-password-123", newHash))

				return nil
			})

		assert.NoError(t, svc.ChangePassword(roleCtx("user-1", constant.RoleUser), req, "user-1"))
	})

	t.Run("customer cannot change another user's password", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.ChangePassword(roleCtx("user-1", constant.RoleUser), req, "user-2")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("admin changes any password", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		user := testUser("user-2", constant.RoleUser)
		user.Password = hashed

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.ChangePassword(roleCtx("admin-1", constant.RoleAdmin), req, "user-2"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		user := testUser("user-1", constant.RoleUser)
		user.Password = hashed

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		wrong := req
		wrong.CurrentPassword = "not-the-password"

		err := svc.ChangePassword(roleCtx("user-1", constant.RoleUser), wrong, "user-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("user not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		err := svc.ChangePassword(roleCtx("admin-1", constant.RoleAdmin), req, "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_AssignStaff(t *testing.T) {
	req := dto.AssignStaffRequest{
		Title: "Senior Mechanic",
		Image: "https://cdn.example.com/staff/jane.jpg",
	}

	t.Run("customer is promoted to staff", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testUser("user-1", constant.RoleUser), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.RoleStaff, fields[model.FieldRole])
				assert.Equal(t, "Senior Mechanic", fields[model.FieldTitle])
				assert.Equal(t, "https://cdn.example.com/staff/jane.jpg", fields[model.FieldImage])

				return nil
			})

		assert.NoError(t, svc.AssignStaff(roleCtx("admin-1", constant.RoleAdmin), req, "user-1"))
	})

	t.Run("existing staff cannot be assigned again", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testUser("user-1", constant.RoleStaff), nil)

		err := svc.AssignStaff(roleCtx("admin-1", constant.RoleAdmin), req, "user-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("admin cannot be demoted to staff", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testUser("admin-2", constant.RoleAdmin), nil)

		err := svc.AssignStaff(roleCtx("admin-1", constant.RoleAdmin), req, "admin-2")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_UnassignStaff(t *testing.T) {
	t.Run("staff reverts to customer", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testUser("user-1", constant.RoleStaff), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.RoleUser, fields[model.FieldRole])
				assert.Nil(t, fields[model.FieldTitle])
				assert.Nil(t, fields[model.FieldImage])

				return nil
			})

		assert.NoError(t, svc.UnassignStaff(roleCtx("admin-1", constant.RoleAdmin), "user-1"))
	})

	t.Run("non staff cannot be unassigned", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testUser("user-1", constant.RoleUser), nil)

		err := svc.UnassignStaff(roleCtx("admin-1", constant.RoleAdmin), "user-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache miss loads from store", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testUser("user-1", constant.RoleUser), nil)

		res, err := svc.Get(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("empty request is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(roleCtx("user-1", constant.RoleUser), dto.UpdateUserRequest{}, "user-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		req := dto.UpdateUserRequest{FirstName: "Janet"}
		assert.NoError(t, svc.Update(roleCtx("user-1", constant.RoleUser), req, "user-1"))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(roleCtx("user-1", constant.RoleUser), dto.UpdateUserRequest{FirstName: "Janet"}, "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
