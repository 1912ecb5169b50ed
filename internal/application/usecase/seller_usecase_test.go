package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelperez/tienda-online/internal/application/dto"
	"github.com/rafaelperez/tienda-online/internal/application/usecase"
	"github.com/rafaelperez/tienda-online/internal/domain"
	"github.com/rafaelperez/tienda-online/internal/domain/repository"
	"github.com/rafaelperez/tienda-online/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func validSeller() dto.CreateSellerRequest {
	return dto.CreateSellerRequest{
		Name:    "Carlos Perez",
		Email:   "carlos.perez@example.com",
		Phone:   "3001112233",
		Address: "Calle Falsa 123",
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// countingSellerRepo delega en el repositorio real contando las llamadas a
// ExistsByEmail, para verificar que la validación de formato corta antes de
// tocar el almacén.
type countingSellerRepo struct {
	repository.SellerRepository
	existsCalls int
}

func (r *countingSellerRepo) ExistsByEmail(email string) (bool, error) {
	r.existsCalls++
	return r.SellerRepository.ExistsByEmail(email)
}

// ──────────────────────────────────────────────────────────────────────────────
// CREATE
// ──────────────────────────────────────────────────────────────────────────────

func TestSellerCreate_DatosValidos(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	in := validSeller()
	out, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "el ID lo asigna el servidor")
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, in.Phone, out.Phone)
	assert.Equal(t, in.Address, out.Address)
	assert.False(t, out.CreatedAt.IsZero())
	assert.False(t, out.UpdatedAt.IsZero())
}

func TestSellerCreate_RoundTrip(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	created, err := uc.Create(validSeller())
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSellerCreate_EmailDuplicado(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	_, err := uc.Create(validSeller())
	require.NoError(t, err)

	otro := validSeller()
	otro.Name = "Otro Vendedor"
	_, err = uc.Create(otro)
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestSellerCreate_NombreInvalido(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	cases := map[string]string{
		"vacío":                 "",
		"solo espacios":         "   ",
		"más de 100 caracteres": strings.Repeat("a", 101),
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			in := validSeller()
			in.Name = value
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSellerCreate_EmailInvalido_NoTocaElAlmacen(t *testing.T) {
	repo := &countingSellerRepo{SellerRepository: memory.NewStore().Sellers()}
	uc := usecase.NewSellerUseCase(repo)

	for _, email := range []string{"", "bad-email", "sin-arroba.com", "a@b", "x.y@z", "a@b.c"} {
		in := validSeller()
		in.Email = email
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "email %q", email)
	}
	assert.Zero(t, repo.existsCalls, "la verificación de unicidad no debe ejecutarse")

	all, err := uc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET
// ──────────────────────────────────────────────────────────────────────────────

func TestSellerGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	_, err := uc.GetByID("no-existe")
	require.ErrorIs(t, err, domain.ErrSellerNotFound)
}

func TestSellerGetAll(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	a := validSeller()
	b := validSeller()
	b.Email = "ana@example.com"
	_, err := uc.Create(a)
	require.NoError(t, err)
	_, err = uc.Create(b)
	require.NoError(t, err)

	all, err := uc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// UPDATE
// ──────────────────────────────────────────────────────────────────────────────

func TestSellerUpdate_ParcialYEmailInmutable(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	created, err := uc.Create(validSeller())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateSellerRequest{
		Name:  strPtr("Carlos P."),
		Email: strPtr("nuevo@example.com"), // se ignora siempre
		Phone: strPtr("3009998877"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Carlos P.", out.Name)
	assert.Equal(t, created.Email, out.Email, "el email no cambia por ningún valor del patch")
	assert.Equal(t, "3009998877", out.Phone)
	assert.Equal(t, created.Address, out.Address, "campo nil se deja sin tocar")

	// El valor persistido también conserva el email original.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)
}

func TestSellerUpdate_NombreInvalido(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	created, err := uc.Create(validSeller())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateSellerRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	largo := strings.Repeat("x", 101)
	_, err = uc.Update(created.ID, dto.UpdateSellerRequest{Name: &largo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSellerUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	_, err := uc.Update("no-existe", dto.UpdateSellerRequest{Name: strPtr("X")})
	require.ErrorIs(t, err, domain.ErrSellerNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE — regla de integridad referencial
// ──────────────────────────────────────────────────────────────────────────────

func TestSellerDelete_NoExiste(t *testing.T) {
	uc := usecase.NewSellerUseCase(memory.NewStore().Sellers())

	err := uc.Delete("no-existe")
	require.ErrorIs(t, err, domain.ErrSellerNotFound)
}

// Escenario completo: crear vendedor y producto, borrar vendedor falla mientras
// el producto exista, y vuelve a funcionar al eliminar el producto.
func TestSellerDelete_BloqueadoMientrasTengaProductos(t *testing.T) {
	store := memory.NewStore()
	sellerUC := usecase.NewSellerUseCase(store.Sellers())
	productUC := usecase.NewProductUseCase(store.Products(), sellerUC)

	seller, err := sellerUC.Create(validSeller())
	require.NoError(t, err)

	product, err := productUC.Create(dto.CreateProductRequest{
		Name:     "Laptop",
		Price:    decPtr("10.00"),
		Stock:    intPtr(5),
		SellerID: seller.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, product.SellerID)

	err = sellerUC.Delete(seller.ID)
	require.ErrorIs(t, err, domain.ErrSellerHasProducts)

	require.NoError(t, productUC.Delete(product.ID))

	require.NoError(t, sellerUC.Delete(seller.ID))
	_, err = sellerUC.GetByID(seller.ID)
	assert.ErrorIs(t, err, domain.ErrSellerNotFound)
}
