package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	pkgjwt "github.com/jhoicas/ecommerce-admin-api/pkg/jwt"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware valida el header Authorization: Bearer <token> y guarda en Locals
// user_id, email y role. Los fallos son domain.Unauthorized y los pinta ErrorHandler.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return domain.Unauthorized("token de autenticación requerido")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return domain.Unauthorized("formato de autorización inválido, se espera Bearer <token>")
		}

		claims, err := pkgjwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return domain.Unauthorized("token inválido o expirado")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole debe ir después de AuthMiddleware. La comparación no distingue mayúsculas.
// Un token sin rol es 401; un rol no permitido es 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return domain.Unauthorized("el token no incluye un rol")
		}
		for _, r := range roles {
			if strings.EqualFold(role, r) {
				return c.Next()
			}
		}
		return domain.Forbidden("el rol %q no tiene permiso para esta operación", role)
	}
}

// GetUserID devuelve el user_id del contexto (después de AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del usuario autenticado.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return v
}
