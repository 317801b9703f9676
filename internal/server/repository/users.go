// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		email, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return uuid.Nil, serr.ErrAlreadyExists
			}
		}
		return uuid.Nil, serr.ErrInternal
	}

	return id, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error) {
	var (
		id   uuid.UUID
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&id, &hash)

	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, "", serr.ErrNotFound
		}
		return uuid.Nil, "", serr.ErrInternal
	}

	return id, hash, nil
}

// GetByID возвращает пользователя целиком (профиль + хэш).
// Хэш дальше api-слоя не уходит.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash,
		        first_name, last_name, bio, phone, avatar_url, created_at
		   FROM users
		  WHERE id=$1`,
		id,
	).Scan(
		&u.ID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.AvatarURL, &u.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// UpdateProfile обновляет только поля профиля (email и хэш не трогаем)
// и возвращает обновлённого пользователя.
func (r *UsersRepository) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	firstName, lastName, bio, phone, avatarURL string,
) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`UPDATE users
		    SET first_name=$2, last_name=$3, bio=$4, phone=$5, avatar_url=$6
		  WHERE id=$1
		  RETURNING id, email, password_hash,
		            first_name, last_name, bio, phone, avatar_url, created_at`,
		id, firstName, lastName, bio, phone, avatarURL,
	).Scan(
		&u.ID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.AvatarURL, &u.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// Delete удаляет аккаунт пользователя.
// Заметки пользователя удаляются каскадно (FK ON DELETE CASCADE).
func (r *UsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id=$1`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
