package repository

import "github.com/rafaelperez/tienda-online/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID retorna (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
