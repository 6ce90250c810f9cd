package accounts

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, account Account) error {
	const query = `
INSERT INTO users (id, email, full_name, password_hash, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		account.ID,
		account.Email,
		nullableString(account.FullName),
		nullableString(account.PasswordHash),
		nullableString(account.PictureURL),
	)
	if err != nil && isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Account, error) {
	return r.getBy(ctx, "id", id)
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Account, error) {
	return r.getBy(ctx, "email", email)
}

func (r *PGRepo) Upsert(ctx context.Context, account Account) error {
	const query = `
INSERT INTO users (id, email, full_name, password_hash, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = EXCLUDED.full_name,
  picture_url = EXCLUDED.picture_url,
  password_hash = COALESCE(EXCLUDED.password_hash, users.password_hash),
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		account.ID,
		account.Email,
		nullableString(account.FullName),
		nullableString(account.PasswordHash),
		nullableString(account.PictureURL),
	)
	return err
}

func (r *PGRepo) getBy(ctx context.Context, column, value string) (Account, error) {
	query := `
SELECT id, email, full_name, password_hash, picture_url, created_at, updated_at
FROM users
WHERE ` + column + ` = $1
LIMIT 1`
	var (
		account      Account
		fullName     sql.NullString
		passwordHash sql.NullString
		pictureURL   sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, value).Scan(
		&account.ID,
		&account.Email,
		&fullName,
		&passwordHash,
		&pictureURL,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	account.FullName = fullName.String
	account.PasswordHash = passwordHash.String
	account.PictureURL = pictureURL.String
	return account, nil
}

// isUniqueViolation matches the Postgres unique_violation SQLSTATE without
// depending on driver error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
