package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelperez/tienda-online/internal/domain"
	"github.com/rafaelperez/tienda-online/internal/domain/entity"
	"github.com/rafaelperez/tienda-online/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador de persistencia. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

// Create persiste un vendedor nuevo. El índice único de email mapea a ErrDuplicateEmail.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, seller.Email, seller.Phone, seller.Address,
		seller.CreatedAt, seller.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID. Retorna (nil, nil) si no existe.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM sellers WHERE id = $1`
	var s entity.Seller
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// GetAll lista todos los vendedores sin orden garantizado.
func (r *SellerRepo) GetAll() ([]*entity.Seller, error) {
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM sellers`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un vendedor existente. Email no aparece en el SET: inmutable.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	query := `
		UPDATE sellers SET name = $2, phone = $3, address = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, seller.Phone, seller.Address, seller.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	return nil
}

// Delete elimina un vendedor por ID.
func (r *SellerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	return nil
}

// ExistsByEmail indica si algún vendedor ya registró el email.
func (r *SellerRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM sellers WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists seller by email: %w", err)
	}
	return exists, nil
}

// HasProducts indica si algún producto referencia al vendedor.
func (r *SellerRepo) HasProducts(sellerID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE seller_id = $1)`, sellerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("seller has products: %w", err)
	}
	return exists, nil
}
