package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(100) NOT NULL,
		email         VARCHAR(150) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(20) NOT NULL CHECK (role IN ('admin','user','vendor')),
		category      VARCHAR(50),
		image_url     VARCHAR(255),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		vendor_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name        VARCHAR(150) NOT NULL,
		description VARCHAR(500) NOT NULL DEFAULT '',
		price       NUMERIC(10,2) NOT NULL,
		stock       INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		status      VARCHAR(20) NOT NULL DEFAULT 'available' CHECK (status IN ('available','out_of_stock')),
		image_url   VARCHAR(255),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS carts (
		id      BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id         BIGSERIAL PRIMARY KEY,
		cart_id    BIGINT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity   INT NOT NULL CHECK (quantity > 0),
		UNIQUE (cart_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		total_amount   NUMERIC(10,2) NOT NULL,
		status         VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','completed','cancelled')),
		name           VARCHAR(100) NOT NULL DEFAULT '',
		email          VARCHAR(150) NOT NULL DEFAULT '',
		address        VARCHAR(255) NOT NULL DEFAULT '',
		city           VARCHAR(100) NOT NULL DEFAULT '',
		state          VARCHAR(100) NOT NULL DEFAULT '',
		pincode        VARCHAR(20) NOT NULL DEFAULT '',
		phone          VARCHAR(20) NOT NULL DEFAULT '',
		payment_method VARCHAR(50) NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id              BIGSERIAL PRIMARY KEY,
		order_id        BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id      BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity        INT NOT NULL,
		price           NUMERIC(10,2) NOT NULL,
		shipping_status VARCHAR(50) NOT NULL DEFAULT 'received'
	)`,
	`CREATE TABLE IF NOT EXISTS memberships (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		duration   VARCHAR(5) NOT NULL DEFAULT '6m' CHECK (duration IN ('6m','1y','2y')),
		start_date DATE NOT NULL,
		end_date   DATE NOT NULL,
		status     VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active','cancelled'))
	)`,
	`CREATE TABLE IF NOT EXISTS guests (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name           VARCHAR(100) NOT NULL,
		contact_number VARCHAR(20) NOT NULL,
		email          VARCHAR(150) NOT NULL
	)`,
}

// Migrate creates the schema on startup if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range statements {
		if _, err := pool.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
