package credentials

import (
	"context"
	"errors"
	"strings"

	"github.com/Sharanupriya/GrocerDash/internal/db"

	"github.com/lib/pq"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
)

type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Register creates a user with a bcrypt-hashed password and returns the
// new user ID. Username uniqueness is enforced by the database.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
) (int64, error) {

	username = strings.TrimSpace(username)
	if username == "" {
		return 0, errors.New("username required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	var userID int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, hash).Scan(&userID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}

	return userID, nil
}

// Authenticate verifies a username/password pair and returns the user
// ID. Lookup and verification failures both map to
// ErrInvalidCredentials so callers cannot probe for usernames.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (int64, error) {

	var (
		userID       int64
		passwordHash string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, password_hash
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`, username).Scan(&userID, &passwordHash)

	if err != nil {
		// hide whether user exists or not
		return 0, ErrInvalidCredentials
	}

	if err := VerifyPassword(passwordHash, password); err != nil {
		return 0, ErrInvalidCredentials
	}

	return userID, nil
}
