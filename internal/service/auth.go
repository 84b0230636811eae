package service

import (
	"context"
	"errors"
	"fmt"

	"wagehire/internal/model"
	"wagehire/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// RoleForUserCount decides the role of a registering user: the very first
// user in the system becomes the admin, everyone after is a candidate.
func RoleForUserCount(count int64) string {
	if count == 0 {
		return model.RoleAdmin
	}
	return model.RoleCandidate
}

// Register creates a new account. The role is decided inside the store
// transaction that also inserts the row, so two concurrent first
// registrations cannot both become admin. Any store failure aborts the
// registration; we never fall back to a default role.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.RegisterTx(ctx, func(count int64) *model.User {
		return &model.User{
			ID:              uuid.NewString(),
			Email:           req.Email,
			Password:        string(hash),
			Name:            req.Name,
			Role:            RoleForUserCount(count),
			Phone:           req.Phone,
			CurrentPosition: req.CurrentPosition,
			ExperienceYears: req.ExperienceYears,
			Skills:          req.Skills,
		}
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
