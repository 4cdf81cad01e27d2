package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/application/auth"
	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
)

// AuthHandler endpoints de autenticación y sesión.
type AuthHandler struct {
	authUC       *auth.AuthUseCase
	secureCookie bool
}

// NewAuthHandler construye el handler; secureCookie marca la cookie como
// Secure (sólo producción).
func NewAuthHandler(authUC *auth.AuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{authUC: authUC, secureCookie: secureCookie}
}

// Login valida credenciales, emite el JWT y fija la cookie de sesión web.
// El token también va en el cuerpo para el cliente móvil.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}

	out, err := h.authUC.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	SetAuthCookie(c, out.Token, h.secureCookie)
	return respondOK(c, out)
}

// Logout limpia la cookie de sesión. El JWT no se revoca server-side; el
// cliente móvil simplemente descarta el token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ClearAuthCookie(c)
	return respondOK(c, fiber.Map{"loggedOut": true})
}

// Me devuelve el perfil del usuario autenticado.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.authUC.Me(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// ChangePassword cambia la contraseña verificando la actual.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}

	if err := h.authUC.ChangePassword(c.Context(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"changed": true})
}
