package memory

import (
	"sync"

	"github.com/rafaelperez/tienda-online/internal/domain/entity"
	"github.com/rafaelperez/tienda-online/internal/domain/repository"
)

// Store almacén en memoria compartido por los repositorios de Seller y Product.
// Útil para desarrollo sin base de datos y para tests unitarios de los casos de uso.
// Cada operación es atómica bajo el mutex; no hay aislamiento entre operaciones,
// igual que con la tienda real.
type Store struct {
	mu       sync.RWMutex
	sellers  map[string]entity.Seller
	products map[string]entity.Product
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		sellers:  make(map[string]entity.Seller),
		products: make(map[string]entity.Product),
	}
}

// Sellers devuelve el repositorio de vendedores sobre este almacén.
func (s *Store) Sellers() repository.SellerRepository {
	return &SellerRepo{store: s}
}

// Products devuelve el repositorio de productos sobre este almacén.
func (s *Store) Products() repository.ProductRepository {
	return &ProductRepo{store: s}
}
