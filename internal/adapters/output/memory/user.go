package memory

import (
	"context"
	"sync"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/domain/exceptions"
)

type UserRepository struct {
	mu      sync.Mutex
	byID    map[string]entities.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Insert(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return exceptions.ErrEmailTaken
	}
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, exceptions.ErrInvalidCredentials
	}
	user := r.byID[id]
	return &user, nil
}
