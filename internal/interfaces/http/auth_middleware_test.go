package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Distriquim-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Distriquim-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "sesion@distriquim.test"
	testIssuer    = "distriquim-test"
)

// buildTestApp arma una app Fiber mínima con una ruta API y una de página,
// ambas detrás de RequireAuth; /api/admin exige además el rol ADMIN.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/protected", apphttp.RequireAuth(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": apphttp.GetUserID(c),
			"email":  apphttp.GetEmail(c),
			"role":   apphttp.GetRole(c),
		})
	})
	app.Get("/api/admin",
		apphttp.RequireAuth(testJWTSecret),
		apphttp.RequireRole(entity.RoleAdmin),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)
	app.Get("/dashboard", apphttp.RequireAuth(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendString("panel")
	})
	return app
}

// tokenForRole genera un JWT válido con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, "Usuario Test", testIssuer, 7)
	require.NoError(t, err)
	return tok
}

// expiredToken genera un JWT vencido firmado con el secret correcto.
func expiredToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, entity.RoleAdmin, "", testIssuer, -1)
	require.NoError(t, err)
	return tok
}

func doGet(t *testing.T, app *fiber.App, path string, mutate func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	return body.Error.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas API: 401 con sobre de error
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAuth_APISinToken_401Unauthorized(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/api/protected", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
}

func TestRequireAuth_APITokenExpirado_401TokenExpired(t *testing.T) {
	app := buildTestApp()
	tok := expiredToken(t)
	resp := doGet(t, app, "/api/protected", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, resp))
}

func TestRequireAuth_APITokenMalformado_401InvalidToken(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/api/protected", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token.invalido.aqui")
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestRequireAuth_BearerValido_CargaClaims(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, entity.RoleDistributor)
	resp := doGet(t, app, "/api/protected", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, entity.RoleDistributor, body["role"])
}

func TestRequireAuth_CookieValida_TambienAutentica(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, entity.RoleAdmin)
	resp := doGet(t, app, "/api/protected", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El header Bearer tiene prioridad: con un Bearer inválido no se cae a la
// cookie aunque esta sea válida.
func TestRequireAuth_BearerInvalidoGanaSobreCookieValida(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, entity.RoleAdmin)
	resp := doGet(t, app, "/api/protected", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token.invalido.aqui")
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de página: redirect a /login
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAuth_PaginaSinToken_RedirectALogin(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/dashboard", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireAuth_PaginaConCookieVencida_RedirectYLimpiaCookie(t *testing.T) {
	app := buildTestApp()
	tok := expiredToken(t)
	resp := doGet(t, app, "/dashboard", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	setCookie := resp.Header.Get("Set-Cookie")
	require.NotEmpty(t, setCookie, "la cookie vencida debe limpiarse en el redirect")
	assert.True(t, strings.HasPrefix(setCookie, "auth_token="), "Set-Cookie: %s", setCookie)
	assert.Contains(t, strings.ToLower(setCookie), "expires=", "la cookie se invalida con expiración pasada")
}

func TestRequireAuth_PaginaConCookieValida_Renderiza(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, entity.RoleAdmin)
	resp := doGet(t, app, "/dashboard", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "panel", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccede(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, entity.RoleAdmin)
	resp := doGet(t, app, "/api/admin", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_DistribuidorBloqueado_403Forbidden(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, entity.RoleDistributor)
	resp := doGet(t, app, "/api/admin", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestRequireRole_TokenSinRol_401MissingRole(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, "")
	resp := doGet(t, app, "/api/admin", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", errorCode(t, resp))
}
