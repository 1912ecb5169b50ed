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

// SellerUseCase reglas de negocio para vendedores: validación, email único e inmutable,
// y bloqueo de borrado mientras existan productos asociados.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso con el puerto de persistencia.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// Create valida los datos, verifica que el email no esté registrado y persiste el vendedor.
// La verificación de unicidad es lectura-luego-escritura; el índice único de la tienda
// resuelve el empate si dos creaciones concurrentes pasan la verificación.
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	if err := validateName(in.Name, "vendedor"); err != nil {
		return nil, err
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: el email del vendedor es obligatorio", domain.ErrInvalidInput)
	}
	if !isValidEmailFormat(in.Email) {
		return nil, fmt.Errorf("%w: el formato del email no es válido", domain.ErrInvalidInput)
	}
	exists, err := uc.repo.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}
	now := time.Now()
	seller := &entity.Seller{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// GetByID obtiene un vendedor por ID.
func (uc *SellerUseCase) GetByID(id string) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}
	return toSellerResponse(seller), nil
}

// GetAll lista todos los vendedores en el orden que entregue la tienda.
func (uc *SellerUseCase) GetAll() ([]dto.SellerResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SellerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSellerResponse(s))
	}
	return items, nil
}

// Update actualización parcial: solo los campos no nil sobreescriben.
// Email se ignora siempre; phone y address sobreescriben sin validación.
// Un campo nil significa "no tocar": no hay forma de vaciar phone o address.
func (uc *SellerUseCase) Update(id string, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}
	if in.Name != nil {
		if err := validateName(*in.Name, "vendedor"); err != nil {
			return nil, err
		}
		seller.Name = *in.Name
	}
	// in.Email se descarta: inmutable después de la creación.
	if in.Phone != nil {
		seller.Phone = *in.Phone
	}
	if in.Address != nil {
		seller.Address = *in.Address
	}
	seller.UpdatedAt = time.Now()
	if err := uc.repo.Update(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// Delete elimina un vendedor. Falla con ErrSellerHasProducts si tiene productos asociados.
func (uc *SellerUseCase) Delete(id string) error {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrSellerNotFound
	}
	hasProducts, err := uc.repo.HasProducts(id)
	if err != nil {
		return err
	}
	if hasProducts {
		return domain.ErrSellerHasProducts
	}
	return uc.repo.Delete(id)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
