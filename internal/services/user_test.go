package service_test

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/repositories/mocks"
	service "github.com/tokoretail/retail-platform/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	req := &models.CreateUserRequest{
		Username: "kasir01",
		Password: "rahasia123",
		Level:    models.UserLevelCashier,
	}

	t.Run("Success - Password is hashed", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)

		var stored string
		repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			u := args.Get(1).(*models.User)
			stored = u.Password
			u.ID = 5
		}).Return(nil).Once()

		user, err := svc.CreateUser(t.Context(), req)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		assert.Empty(t, user.Password)
		assert.NotEqual(t, req.Password, stored)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(req.Password)))
	})

	t.Run("Failure - Duplicate username", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)

		repo.On("CreateUser", mock.Anything, mock.Anything).Return(&pq.Error{Code: "23505", Constraint: "users_username_key"}).Once()

		_, err := svc.CreateUser(t.Context(), req)

		appErr := requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
		assert.Equal(t, 409, appErr.StatusCode)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Success - New password is re-hashed", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := service.NewUserService(repo)

		repo.On("UpdateUser", mock.Anything, int64(5), mock.MatchedBy(func(r *models.UpdateUserRequest) bool {
			return r.Password != nil && bcrypt.CompareHashAndPassword([]byte(*r.Password), []byte("baru12345")) == nil
		})).Return(&models.User{ID: 5, Username: "kasir01"}, nil).Once()

		user, err := svc.UpdateUser(t.Context(), 5, &models.UpdateUserRequest{Password: strPtr("baru12345")})

		require.NoError(t, err)
		assert.Equal(t, "kasir01", user.Username)
	})

	t.Run("Failure - Unknown level", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewUserRepository(t))
		level := models.UserLevel("owner")

		_, err := svc.UpdateUser(t.Context(), 5, &models.UpdateUserRequest{Level: &level})

		requireAppError(t, err, appErrors.ErrCodeValidation)
	})
}
