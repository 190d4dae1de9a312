package usecases

import (
	"context"

	"civicdesk/internal/domain/user"
	"civicdesk/internal/shared/authorization"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues signed token pairs for authenticated users.
type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
}

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	UserID       uint
	Name         string
	Email        string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUserUseCase struct {
	userRepo   user.Repository
	hasher     PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existingUser, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil || existingUser == nil {
		// Generic error: do not reveal whether the email exists.
		uc.logger.Debugw("login failed, user lookup", "email", cmd.Email, "error", err)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Debugw("login failed, password mismatch", "user_id", existingUser.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &LoginUserResult{
		UserID:       existingUser.ID(),
		Name:         existingUser.Name(),
		Email:        existingUser.Email().String(),
		Role:         string(existingUser.Role()),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
