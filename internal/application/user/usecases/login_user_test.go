package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicdesk/internal/domain/user"
	vo "civicdesk/internal/domain/user/valueobjects"
	"civicdesk/internal/shared/authorization"
	apperrors "civicdesk/internal/shared/errors"
)

func existingUser(t *testing.T) *user.User {
	t.Helper()

	email, err := vo.NewEmail("asha@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(21, "Asha Patel", email, "stored-hash", authorization.RoleCitizen,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return u
}

func TestLoginUserUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "asha@example.com", email)
			return existingUser(t), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			assert.Equal(t, "correct-password", password)
			assert.Equal(t, "stored-hash", hash)
			return nil
		},
	}

	useCase := NewLoginUserUseCase(mockRepo, hasher, &mockJWTService{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), LoginUserCommand{
		Email:    "asha@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(21), result.UserID)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
}

func TestLoginUserUseCase_Execute_UnknownEmail(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.New("user not found")
		},
	}

	useCase := NewLoginUserUseCase(mockRepo, &mockHasher{}, &mockJWTService{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), LoginUserCommand{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	// Same message as a wrong password, so the response does not leak
	// which emails are registered.
	assert.Contains(t, appErr.Message, "invalid email or password")
}

func TestLoginUserUseCase_Execute_WrongPassword(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existingUser(t), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.New("mismatch")
		},
	}

	useCase := NewLoginUserUseCase(mockRepo, hasher, &mockJWTService{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), LoginUserCommand{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Contains(t, appErr.Message, "invalid email or password")
}

func TestLoginUserUseCase_Execute_MissingCredentials(t *testing.T) {
	useCase := NewLoginUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockJWTService{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), LoginUserCommand{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestLoginUserUseCase_Execute_TokenFailure(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existingUser(t), nil
		},
	}
	jwtService := &mockJWTService{
		GenerateFunc: func(userID uint, role authorization.UserRole) (*TokenPair, error) {
			return nil, errors.New("signing failure")
		},
	}

	useCase := NewLoginUserUseCase(mockRepo, &mockHasher{}, jwtService, &mockLogger{})

	result, err := useCase.Execute(context.Background(), LoginUserCommand{
		Email:    "asha@example.com",
		Password: "correct-password",
	})

	require.Error(t, err)
	assert.Nil(t, result)
}
