package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// La heurística de email es deliberadamente laxa: '@' antes del último '.' y
// longitud mayor a 5. Estos casos fijan ese contrato, no RFC 5322.
func TestIsValidEmailFormat(t *testing.T) {
	valid := []string{
		"a@b.co",
		"carlos.perez@example.com",
		"x@y.z.w",
		"raro@@dominio.com", // laxa a propósito: doble arroba pasa
	}
	for _, email := range valid {
		assert.True(t, isValidEmailFormat(email), "esperaba válido: %q", email)
	}

	invalid := []string{
		"",
		"bad-email",
		"sin-arroba.com",
		"a@b",    // sin punto después del arroba
		"x.y@z",  // el último punto queda antes del arroba
		"a@b.c",  // longitud 5, no mayor a 5
	}
	for _, email := range invalid {
		assert.False(t, isValidEmailFormat(email), "esperaba inválido: %q", email)
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("Laptop", "producto"))
	assert.NoError(t, validateName(strings.Repeat("a", 100), "producto"))

	assert.Error(t, validateName("", "producto"))
	assert.Error(t, validateName("   ", "producto"))
	assert.Error(t, validateName(strings.Repeat("a", 101), "producto"))
}
