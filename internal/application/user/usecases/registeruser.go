package usecases

import (
	"context"

	"civicdesk/internal/domain/user"
	vo "civicdesk/internal/domain/user/valueobjects"
	"civicdesk/internal/shared/authorization"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserResult struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

type RegisterUserUseCase struct {
	userRepo  user.Repository
	hasher    PasswordHasher
	txManager TransactionManager
	logger    logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	txManager TransactionManager,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email address")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(cmd.Name, email, hash, authorization.RoleCitizen)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The uniqueness check and the insert share one transaction so two
	// concurrent registrations cannot both pass the check.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.userRepo.ExistsByEmail(txCtx, email.String())
		if err != nil {
			uc.logger.Errorw("failed to check email existence", "error", err)
			return errors.NewInternalError("failed to check email existence")
		}
		if exists {
			return errors.NewConflictError("an account with this email already exists")
		}

		if err := uc.userRepo.Save(txCtx, newUser); err != nil {
			uc.logger.Errorw("failed to save user", "error", err)
			return errors.NewInternalError("failed to save user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "email", email.String())

	return &RegisterUserResult{
		UserID: newUser.ID(),
		Name:   newUser.Name(),
		Email:  newUser.Email().String(),
		Role:   string(newUser.Role()),
	}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Name) > 100 {
		return errors.NewValidationError("name exceeds maximum length of 100 characters")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Password) > 72 {
		return errors.NewValidationError("password exceeds maximum length of 72 characters")
	}
	return nil
}
