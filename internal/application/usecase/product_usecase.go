package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelperez/tienda-online/internal/application/dto"
	"github.com/rafaelperez/tienda-online/internal/domain"
	"github.com/rafaelperez/tienda-online/internal/domain/entity"
	"github.com/rafaelperez/tienda-online/internal/domain/repository"
)

// ProductUseCase reglas de negocio para productos: validación, vendedor existente al
// crear y vendedor inmutable al actualizar.
type ProductUseCase struct {
	repo    repository.ProductRepository
	sellers *SellerUseCase
}

// NewProductUseCase construye el caso de uso. Depende del caso de uso de vendedores
// para verificar la existencia del vendedor al crear.
func NewProductUseCase(repo repository.ProductRepository, sellers *SellerUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, sellers: sellers}
}

// Create valida en orden (gana el primer fallo): nombre, precio, stock y seller_id.
// Después verifica que el vendedor exista; ErrSellerNotFound se propaga sin envolver.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateName(in.Name, "producto"); err != nil {
		return nil, err
	}
	if in.Price == nil || !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if in.Stock == nil || *in.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.SellerID == "" {
		return nil, fmt.Errorf("%w: el vendedor es obligatorio", domain.ErrInvalidInput)
	}
	if _, err := uc.sellers.GetByID(in.SellerID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Stock:       *in.Stock,
		SellerID:    in.SellerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// GetAll lista todos los productos en el orden que entregue la tienda.
func (uc *ProductUseCase) GetAll() ([]dto.ProductResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualización parcial: solo los campos no nil sobreescriben, con las mismas
// reglas que Create. SellerID se ignora siempre (el producto no cambia de vendedor).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		if err := validateName(*in.Name, "producto"); err != nil {
			return nil, err
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Stock = *in.Stock
	}
	// in.SellerID se descarta: inmutable después de la creación.
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Ningún otro registro referencia productos,
// así que el borrado es incondicional.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		SellerID:    p.SellerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
