package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelperez/tienda-online/pkg/jwt"
)

// LocalSubject clave de Locals con el sujeto del token, si la petición trae uno válido.
const LocalSubject = "subject"

// BearerPlaceholder extrae el Bearer Token JWT a c.Locals cuando está presente y es
// válido, pero nunca rechaza la petición: todavía no hay cuentas de usuario.
// Cuando se añadan, este middleware pasa a responder 401 en lugar de continuar.
func BearerPlaceholder(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		subject, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Next()
		}
		c.Locals(LocalSubject, subject)
		return c.Next()
	}
}

// GetSubject devuelve el sujeto del token del contexto, o "" si la petición era anónima.
func GetSubject(c *fiber.Ctx) string {
	v := c.Locals(LocalSubject)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
