package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"tasklist/internal/auth"
	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/domain/exceptions"
	"tasklist/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenManager
	now    func() time.Time
	log    *zap.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenManager, log *zap.Logger) (*AuthService, error) {
	if users == nil {
		return nil, errors.New("user repository is nil")
	}
	if tokens == nil {
		return nil, errors.New("token manager is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	return &AuthService{
		users:  users,
		tokens: tokens,
		now:    time.Now,
		log:    log,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, exceptions.ErrInvalidEmail
	}
	if password == "" {
		return nil, exceptions.ErrEmptyPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.log.Error("usecase: register hashing failed", zap.Error(err))
		return nil, err
	}

	user := entities.NewUser(uuid.NewString(), email, hash, s.now())
	if err := s.users.Insert(ctx, user); err != nil {
		if !errors.Is(err, exceptions.ErrEmailTaken) {
			s.log.Warn("usecase: register failed", zap.Error(err))
		}
		return nil, err
	}

	s.log.Info("usecase: register done", zap.String("user_id", user.ID))
	return user, nil
}

// Login deliberately reports unknown email and wrong password with the
// same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, exceptions.ErrInvalidCredentials) {
			return "", exceptions.ErrInvalidCredentials
		}
		s.log.Warn("usecase: login lookup failed", zap.Error(err))
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", exceptions.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("usecase: login token issue failed", zap.Error(err))
		return "", err
	}

	s.log.Info("usecase: login done", zap.String("user_id", user.ID))
	return token, nil
}
