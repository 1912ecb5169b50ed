package dto

import "time"

// CreateSellerRequest entrada para crear un vendedor. ID y timestamps los asigna el servidor.
type CreateSellerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateSellerRequest entrada para actualización parcial: los campos nil se dejan sin tocar.
// Email se acepta en el cuerpo pero se ignora siempre (inmutable después de la creación).
type UpdateSellerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// SellerResponse salida de un vendedor.
type SellerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
