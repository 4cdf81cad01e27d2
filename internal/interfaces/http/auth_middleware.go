package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/pkg/jwt"
)

// Locals keys para los claims de la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalEmail    = "email"
	LocalRole     = "role"
	LocalFullName = "full_name"
)

// AuthCookieName cookie HTTP-only usada por el cliente web; el cliente móvil
// manda el mismo token por header Authorization.
const AuthCookieName = "auth_token"

// tokenExtractor una estrategia de extracción de token. Se prueban en orden
// y gana la primera que encuentra algo.
type tokenExtractor func(c *fiber.Ctx) string

var tokenExtractors = []tokenExtractor{fromBearerHeader, fromAuthCookie}

// fromBearerHeader extrae el token de "Authorization: Bearer <token>".
func fromBearerHeader(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// fromAuthCookie extrae el token de la cookie de sesión web.
func fromAuthCookie(c *fiber.Ctx) string {
	return c.Cookies(AuthCookieName)
}

// TokenFromRequest devuelve el token de la petición: header Bearer primero,
// cookie después. Ninguna otra fuente se consulta.
func TokenFromRequest(c *fiber.Ctx) string {
	for _, extract := range tokenExtractors {
		if tok := extract(c); tok != "" {
			return tok
		}
	}
	return ""
}

// RequireAuth exige un token válido para toda ruta no pública.
//
// Rutas API (prefijo /api): 401 con sobre de error; el código distingue
// UNAUTHORIZED (sin token), TOKEN_EXPIRED e INVALID_TOKEN.
// Rutas de página: redirect a /login; si el token era inválido se limpia la
// cookie vencida antes de redirigir.
func RequireAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAPI := strings.HasPrefix(c.Path(), "/api")

		token := TokenFromRequest(c)
		if token == "" {
			if isAPI {
				return respondError(c, domain.Unauthorized("autenticación requerida"))
			}
			return c.Redirect("/login", fiber.StatusFound)
		}

		claims, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			if isAPI {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return respondError(c, domain.E(domain.KindTokenExpired, "el token expiró, inicie sesión de nuevo"))
				}
				return respondError(c, domain.E(domain.KindTokenInvalid, "token inválido"))
			}
			ClearAuthCookie(c)
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalFullName, claims.FullName)
		return c.Next()
	}
}

// RequireRole autoriza por rol sobre una sesión ya resuelta por RequireAuth.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respondError(c, domain.E(domain.KindMissingRole, "rol ausente en el token"))
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return respondError(c, domain.Forbidden("no tiene permisos para esta operación"))
	}
}

// SetAuthCookie fija la cookie de sesión web: httpOnly, SameSite=Lax, Secure
// en producción, sin max-age (cookie de sesión del navegador; el token firmado
// sigue valiendo 7 días si se reenvía).
func SetAuthCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearAuthCookie invalida la cookie de sesión web.
func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// GetUserID devuelve el UserID de la sesión (después de RequireAuth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetEmail devuelve el email de la sesión.
func GetEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetFullName devuelve el nombre completo de la sesión.
func GetFullName(c *fiber.Ctx) string { return localString(c, LocalFullName) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
