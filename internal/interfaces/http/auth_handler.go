package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	val *Validator
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, val *Validator) *AuthHandler {
	return &AuthHandler{uc: uc, val: val}
}

// Register godoc
// @Summary      Auto-registro de cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, email y contraseña"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bindBody(c, h.val, &in); err != nil {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("usuario registrado", out))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindBody(c, h.val, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("sesión iniciada", out))
}
