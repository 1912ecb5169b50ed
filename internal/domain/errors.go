package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Se propagan sin modificar hasta la capa HTTP, que decide el código de estado.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateEmail    = errors.New("el email ya está registrado")
	ErrSellerNotFound    = errors.New("vendedor no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrSellerHasProducts = errors.New("el vendedor tiene productos asociados")
)
