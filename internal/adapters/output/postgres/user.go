package postgres

import (
	"context"
	"errors"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/domain/exceptions"
	"tasklist/internal/infrastructure/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db  db.Querier
	log *zap.Logger
}

func NewUserRepository(db db.Querier, log *zap.Logger) *UserRepository {
	if db == nil {
		log.Fatal("database querier is nil")
	}
	if log == nil {
		panic("logger is nil")
	}
	return &UserRepository{
		db:  db,
		log: log,
	}
}

func (r *UserRepository) Insert(ctx context.Context, user *entities.User) error {
	query := `INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(
		ctx,
		query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return exceptions.ErrEmailTaken
		}
		r.log.Error("failed to insert user", zap.Error(err))
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	user := entities.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, exceptions.ErrInvalidCredentials
		}
		r.log.Error("failed to get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
