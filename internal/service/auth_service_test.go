package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mrtrack/internal/config"
	"mrtrack/internal/domain"
	"mrtrack/internal/service"
	"mrtrack/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "mrtrack-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func rahulUser() *domain.User {
	return &domain.User{
		ID:           "u-mr1",
		Username:     "rahul.kumar",
		PasswordHash: hashPassword("temp123"),
		FullName:     "Rahul Kumar",
		Role:         domain.RoleMR,
		FieldRepID:   "mr1",
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByUsername", mock.Anything, "rahul.kumar").Return(rahulUser(), nil)

	result, err := svc.Login(context.Background(), service.LoginInput{Username: "rahul.kumar", Password: "temp123"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-mr1", claims.UserID)
	assert.Equal(t, domain.RoleMR, claims.Role)
	assert.Equal(t, "mr1", claims.FieldRepID)
	assert.Equal(t, "mr1", claims.Actor().FieldRepID)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByUsername", mock.Anything, "rahul.kumar").Return(rahulUser(), nil)

	result, err := svc.Login(context.Background(), service.LoginInput{Username: "rahul.kumar", Password: "wrong"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := rahulUser()
	user.IsActive = false
	userRepo.On("GetByUsername", mock.Anything, "rahul.kumar").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{Username: "rahul.kumar", Password: "temp123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := rahulUser()
	userRepo.On("GetByUsername", mock.Anything, "rahul.kumar").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, "u-mr1").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{Username: "rahul.kumar", Password: "temp123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	userRepo.AssertExpectations(t)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByUsername", mock.Anything, "rahul.kumar").Return(rahulUser(), nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{Username: "rahul.kumar", Password: "temp123"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByUsername", mock.Anything, "rahul.kumar").Return(rahulUser(), nil)
	pair, err := svc.Login(context.Background(), service.LoginInput{Username: "rahul.kumar", Password: "temp123"})
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "another-secret"
	_, err = service.NewAuthService(userRepo, other).ValidateToken(pair.AccessToken)
	assert.Error(t, err)
}
