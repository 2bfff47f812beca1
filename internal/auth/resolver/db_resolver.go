package resolver

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sharanupriya/GrocerDash/internal/auth"
	"github.com/Sharanupriya/GrocerDash/internal/db"
)

// DBResolver resolves identities using the database. OAuth users share
// the users table with password accounts; their username is the
// provider-asserted email and their password hash stays empty.
type DBResolver struct {
	db *db.DB
}

func NewDBResolver(db *db.DB) *DBResolver {
	return &DBResolver{db: db}
}

func (r *DBResolver) Resolve(
	ctx context.Context,
	identity *auth.Identity,
) (int64, error) {

	if identity == nil {
		return 0, errors.New("identity is nil")
	}

	// 1. Try identity lookup (provider + provider_user_id)
	var userID int64
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id
		FROM identities
		WHERE provider = $1
		  AND provider_user_id = $2
	`,
		identity.Provider,
		identity.ProviderUserID,
	).Scan(&userID)

	if err == nil {
		return userID, nil
	}

	if err != sql.ErrNoRows {
		return 0, err
	}

	// 2. Try email-based linking (existing user, new provider)
	err = r.db.QueryRowContext(ctx, `
		SELECT id
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`,
		identity.Email,
	).Scan(&userID)

	if err == nil {
		// Link new identity to existing user
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO identities (user_id, provider, provider_user_id)
			VALUES ($1, $2, $3)
		`,
			userID,
			identity.Provider,
			identity.ProviderUserID,
		)
		if err != nil {
			return 0, err
		}

		return userID, nil
	}

	if err != sql.ErrNoRows {
		return 0, err
	}

	// 3. Create new user
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id
	`,
		identity.Email,
	).Scan(&userID)

	if err != nil {
		return 0, err
	}

	// 4. Create identity mapping
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO identities (user_id, provider, provider_user_id)
		VALUES ($1, $2, $3)
	`,
		userID,
		identity.Provider,
		identity.ProviderUserID,
	)

	if err != nil {
		return 0, err
	}

	return userID, nil
}
