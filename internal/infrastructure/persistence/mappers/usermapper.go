package mappers

import (
	"fmt"

	"civicdesk/internal/domain/user"
	vo "civicdesk/internal/domain/user/valueobjects"
	"civicdesk/internal/infrastructure/persistence/models"
	"civicdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a user domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a user persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid user email (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
