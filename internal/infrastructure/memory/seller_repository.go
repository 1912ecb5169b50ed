package memory

import (
	"github.com/rafaelperez/tienda-online/internal/domain/entity"
	"github.com/rafaelperez/tienda-online/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación en memoria de SellerRepository.
type SellerRepo struct {
	store *Store
}

// Create guarda un vendedor nuevo.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sellers[seller.ID] = *seller
	return nil
}

// GetByID retorna (nil, nil) si el vendedor no existe.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.sellers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// GetAll lista todos los vendedores sin orden garantizado.
func (r *SellerRepo) GetAll() ([]*entity.Seller, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*entity.Seller, 0, len(r.store.sellers))
	for _, s := range r.store.sellers {
		seller := s
		list = append(list, &seller)
	}
	return list, nil
}

// Update sobreescribe el registro completo.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sellers[seller.ID] = *seller
	return nil
}

// Delete elimina el vendedor si existe.
func (r *SellerRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sellers, id)
	return nil
}

// ExistsByEmail recorre todos los registros; mismo contrato lineal que la tienda real.
func (r *SellerRepo) ExistsByEmail(email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, s := range r.store.sellers {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// HasProducts indica si algún producto referencia al vendedor.
// Si el vendedor no existe retorna false, no error.
func (r *SellerRepo) HasProducts(sellerID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.SellerID == sellerID {
			return true, nil
		}
	}
	return false, nil
}
