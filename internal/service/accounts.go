package service

import (
	"context"
	"fmt"

	"itinera/internal/model"
	"itinera/internal/repository"
)

// AccountService manages users and the current profile.
type AccountService interface {
	ListUsers(ctx context.Context) ([]model.UserRecord, error)
	CreateUser(ctx context.Context, user model.User) (*model.UserRecord, error)
	// Profile returns the signed-in user. There is no authentication, so it is always the demo account.
	Profile(ctx context.Context) model.Profile
	// UpdateProfile accepts arbitrary fields and echoes them back.
	UpdateProfile(ctx context.Context, fields map[string]any) map[string]any
}

type accountService struct {
	users repository.UserRepository
}

func NewAccountService(users repository.UserRepository) AccountService {
	return &accountService{users: users}
}

func (s *accountService) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *accountService) CreateUser(ctx context.Context, user model.User) (*model.UserRecord, error) {
	user.Normalize()
	if err := user.Validate(); err != nil {
		return nil, err
	}
	rec, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return rec, nil
}

func (s *accountService) Profile(context.Context) model.Profile {
	return model.Profile{
		ID:    "user_1",
		Name:  "John Doe",
		Email: "john@example.com",
		Preferences: map[string]any{
			"theme":    "dark",
			"language": "en",
			"currency": "USD",
		},
	}
}

func (s *accountService) UpdateProfile(_ context.Context, fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	return fields
}
