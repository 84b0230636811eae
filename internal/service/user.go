package service

import (
	"context"
	"errors"

	"wagehire/internal/model"
	"wagehire/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the mutable profile fields. Email, role and password
// are managed elsewhere and never touched here.
func (s *UserService) UpdateProfile(ctx context.Context, id string, req model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	user.Phone = req.Phone
	user.CurrentPosition = req.CurrentPosition
	if req.ExperienceYears != nil {
		user.ExperienceYears = req.ExperienceYears
	}
	user.Skills = req.Skills
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
