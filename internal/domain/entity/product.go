package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por un vendedor.
// SellerID referencia a un Seller existente y es inmutable después de la creación.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	SellerID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
