package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Distriquim-api/internal/interfaces/http"
)

// buildRouterApp arma la app con el Router real. Los use cases van en nil:
// estos tests sólo ejercitan el cableado de rutas y middleware, nunca llegan
// a un handler que los use.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// /login es pública: renderiza siempre, con o sin sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_LoginSinToken_Renderiza(t *testing.T) {
	app := buildRouterApp()
	resp := doGet(t, app, "/login", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "login-form")
}

func TestRouter_LoginConCookieVencida_RenderizaSinRedirect(t *testing.T) {
	app := buildRouterApp()
	tok := expiredToken(t)
	resp := doGet(t, app, "/login", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
}

// Una sesión vigente tampoco saca al usuario de /login: la página renderiza
// igual en vez de redirigir al portal.
func TestRouter_LoginConCookieValida_RenderizaSinRedirect(t *testing.T) {
	app := buildRouterApp()
	tok := tokenForRole(t, entity.RoleAdmin)
	resp := doGet(t, app, "/login", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "login-form")
}

// ──────────────────────────────────────────────────────────────────────────────
// CORS en la superficie /api
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_PreflightCORSPermitePatch(t *testing.T) {
	app := buildRouterApp()
	req := httptest.NewRequest(http.MethodOptions, "/api/products/p1", nil)
	req.Header.Set("Origin", "https://movil.distriquim.test")
	req.Header.Set("Access-Control-Request-Method", "PATCH")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	allowed := resp.Header.Get("Access-Control-Allow-Methods")
	assert.Contains(t, allowed, "PATCH", "Allow-Methods: %s", allowed)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
