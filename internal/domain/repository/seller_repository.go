package repository

import "github.com/rafaelperez/tienda-online/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller (DIP).
// GetByID retorna (nil, nil) cuando el registro no existe.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByID(id string) (*entity.Seller, error)
	GetAll() ([]*entity.Seller, error)
	Update(seller *entity.Seller) error
	Delete(id string) error
	ExistsByEmail(email string) (bool, error)
	HasProducts(sellerID string) (bool, error)
}
