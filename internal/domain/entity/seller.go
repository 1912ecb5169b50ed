package entity

import "time"

// Seller representa un vendedor de la tienda.
// Email es único e inmutable después de la creación; ID y timestamps los asigna el servidor.
type Seller struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
