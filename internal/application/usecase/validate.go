package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rafaelperez/tienda-online/internal/domain"
)

// maxNameLength longitud máxima del nombre de vendedores y productos.
const maxNameLength = 100

// validateName reglas comunes de nombre: obligatorio, no vacío y máximo 100 caracteres.
// field se usa solo para el mensaje ("vendedor", "producto").
func validateName(name, field string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: el nombre del %s es obligatorio", domain.ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: el nombre no puede exceder %d caracteres", domain.ErrInvalidInput, maxNameLength)
	}
	return nil
}

// isValidEmailFormat validación mínima de estructura: '@' presente antes del último '.'
// y longitud total mayor a 5. No pretende cumplir RFC 5322; acepta direcciones raras.
func isValidEmailFormat(email string) bool {
	return strings.Contains(email, "@") &&
		strings.Index(email, "@") < strings.LastIndex(email, ".") &&
		len(email) > 5
}
