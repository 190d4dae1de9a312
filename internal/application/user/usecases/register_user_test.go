package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicdesk/internal/domain/user"
	"civicdesk/internal/shared/authorization"
	apperrors "civicdesk/internal/shared/errors"
)

func TestRegisterUserUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	mockRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			if err := u.SetID(21); err != nil {
				return err
			}
			saved = u
			return nil
		},
	}

	useCase := NewRegisterUserUseCase(mockRepo, &mockHasher{}, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RegisterUserCommand{
		Name:     "Asha Patel",
		Email:    "Asha.Patel@Example.com",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(21), result.UserID)
	assert.Equal(t, "asha.patel@example.com", result.Email)
	assert.Equal(t, string(authorization.RoleCitizen), result.Role)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:long-enough-password", saved.PasswordHash())
	assert.False(t, saved.IsAdmin())
}

func TestRegisterUserUseCase_Execute_ChecksAndSavesInOneTransaction(t *testing.T) {
	type ctxKey struct{}

	var checkedInTx, savedInTx bool
	mockRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			checkedInTx = ctx.Value(ctxKey{}) != nil
			return false, nil
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedInTx = ctx.Value(ctxKey{}) != nil
			return u.SetID(22)
		},
	}

	txCalls := 0
	txManager := &mockTxManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			txCalls++
			return fn(context.WithValue(ctx, ctxKey{}, true))
		},
	}

	useCase := NewRegisterUserUseCase(mockRepo, &mockHasher{}, txManager, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RegisterUserCommand{
		Name:     "Asha Patel",
		Email:    "asha.patel@example.com",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, txCalls)
	assert.True(t, checkedInTx)
	assert.True(t, savedInTx)
}

func TestRegisterUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	mockRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			t.Fatal("duplicate email must not be saved")
			return nil
		},
	}

	useCase := NewRegisterUserUseCase(mockRepo, &mockHasher{}, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RegisterUserCommand{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Password: "long-enough-password",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegisterUserUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       RegisterUserCommand
		expectedError string
	}{
		{
			name:          "missing name",
			command:       RegisterUserCommand{Email: "a@example.com", Password: "long-enough"},
			expectedError: "name is required",
		},
		{
			name: "name too long",
			command: RegisterUserCommand{
				Name:     strings.Repeat("x", 101),
				Email:    "a@example.com",
				Password: "long-enough",
			},
			expectedError: "name exceeds maximum length",
		},
		{
			name:          "short password",
			command:       RegisterUserCommand{Name: "Asha", Email: "a@example.com", Password: "short"},
			expectedError: "password must be at least 8 characters",
		},
		{
			name:          "invalid email",
			command:       RegisterUserCommand{Name: "Asha", Email: "not-an-email", Password: "long-enough"},
			expectedError: "invalid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewRegisterUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockTxManager{}, &mockLogger{})

			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestRegisterUserUseCase_Execute_HasherFailure(t *testing.T) {
	hasher := &mockHasher{
		HashFunc: func(password string) (string, error) {
			return "", errors.New("bcrypt failure")
		},
	}

	useCase := NewRegisterUserUseCase(&mockUserRepository{}, hasher, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RegisterUserCommand{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "long-enough-password",
	})

	require.Error(t, err)
	assert.Nil(t, result)
}
