package db

import (
	"context"
	"database/sql"
)

const schemaMigration = `
CREATE TABLE IF NOT EXISTS users (
    id bigserial PRIMARY KEY,
    username text NOT NULL,
    password_hash text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_unique
ON users (LOWER(username));

CREATE TABLE IF NOT EXISTS identities (
    id bigserial PRIMARY KEY,
    user_id bigint NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    provider text NOT NULL,
    provider_user_id text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT identities_provider_unique
        UNIQUE (provider, provider_user_id)
);

CREATE TABLE IF NOT EXISTS products (
    id bigserial PRIMARY KEY,
    name text NOT NULL UNIQUE,
    price double precision NOT NULL CHECK (price >= 0),
    description text NOT NULL DEFAULT '',
    image text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS cart_items (
    id bigserial PRIMARY KEY,
    user_id bigint NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    product_id bigint NOT NULL REFERENCES products(id),
    quantity integer NOT NULL CHECK (quantity >= 1)
);

CREATE INDEX IF NOT EXISTS cart_items_user_id_idx
ON cart_items (user_id);

CREATE TABLE IF NOT EXISTS orders (
    id bigserial PRIMARY KEY,
    user_id bigint NOT NULL REFERENCES users(id),
    total double precision NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS orders_user_id_idx
ON orders (user_id);
`

// Catalog fixtures from the original storefront. The seed is idempotent:
// re-running it never duplicates or overwrites a product.
const productSeed = `
INSERT INTO products (name, price, description, image) VALUES
    ('Apple',  150.00, 'Fresh and juicy apples for your health.',            '/images/apple.jpg'),
    ('Banana',  40.00, 'Ripe bananas, perfect for snacks or smoothies.',     '/images/banana.jpg'),
    ('Milk',    55.00, 'Fresh milk for your breakfast.',                     '/images/milk.jpg'),
    ('Bread',   35.00, 'Freshly baked bread, perfect for sandwiches.',       '/images/bread.jpg'),
    ('Carrot',  60.00, 'Fresh and crunchy carrots, great for salads.',       '/images/carrot.jpg'),
    ('Tomato',  30.00, 'Fresh, juicy tomatoes for your meals.',              '/images/tomato.jpg')
ON CONFLICT (name) DO NOTHING;
`

// RunMigration creates the schema if absent and seeds the catalog.
func RunMigration(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaMigration); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, productSeed)
	return err
}
