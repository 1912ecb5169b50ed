package postgres

import (
	"context"
	"fmt"
)

// schema DDL mínimo de la aplicación. El índice único sobre sellers.email respalda
// la verificación de unicidad del caso de uso, que por sí sola no es atómica.
const schema = `
CREATE TABLE IF NOT EXISTS sellers (
	id         TEXT PRIMARY KEY,
	name       VARCHAR(100) NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS sellers_email_key ON sellers (email);

CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        VARCHAR(100) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL,
	stock       INT NOT NULL,
	seller_id   TEXT NOT NULL REFERENCES sellers (id),
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS products_seller_id_idx ON products (seller_id);
`

// EnsureSchema crea las tablas si no existen. Idempotente; se ejecuta al arrancar.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear schema: %w", err)
	}
	return nil
}
