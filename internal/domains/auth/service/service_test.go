package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitstop/config"
	"pitstop/infras/jwt"
	jwtMocks "pitstop/infras/jwt/mocks"
	"pitstop/infras/otel/mocks"
	"pitstop/internal/domains/auth/model/dto"
	"pitstop/internal/domains/auth/service"
	userMocks "pitstop/internal/domains/user/mocks"
	userModel "pitstop/internal/domains/user/model"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
	"pitstop/shared/password"
)

func newService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	return service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT), mockUserRepo, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	registerRequest := dto.RegisterRequest{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		ContactNumber: "08123456789",
		Password:      "super-secret",
	}

	t.Run("new email registers as customer", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.Equal(t, "jane@example.com", user.Email)
				assert.NoError(t, password.Verify("super-secret", user.Password))

				return nil
			})

		assert.NoError(t, svc.Register(context.Background(), registerRequest))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Register(context.Background(), registerRequest)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "email already registered")
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("super-secret")
	require.NoError(t, err)

	user := userModel.User{
		ID:        "1ba0d6b2-6d8a-4a6f-9f0e-1f1c2d3e4f50",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  hashed,
		Role:      constant.RoleUser,
	}

	loginRequest := dto.LoginRequest{Email: "jane@example.com", Password: "super-secret"}

	t.Run("valid credentials yield token pair", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newService(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockJWT.EXPECT().
			GenerateTokenPair(user.ID, user.Email, user.Role).
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)

		res, err := svc.Login(context.Background(), loginRequest)
		require.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, user.ID, res.User.ID)
		assert.Equal(t, constant.RoleUser, res.User.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), loginRequest)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: "not-it"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "invalid email or password")
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})
		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().RefreshTokens("bad").Return(nil, assert.AnError)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
