package http

import (
	"github.com/gofiber/fiber/v2"
)

// PagesHandler páginas servidas por el propio servicio. El portal real es una
// SPA aparte; estas páginas son el shell mínimo: /login siempre responde y el
// resto pasa por el middleware de sesión con redirect.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler { return &PagesHandler{} }

// Login página pública de inicio de sesión. Siempre renderiza, con o sin
// cookie: el navegador aterriza acá después de cualquier redirect.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(loginPage)
}

// Dashboard shell del portal para una sesión ya validada.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(dashboardPage)
}

const loginPage = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Distriquim — Iniciar sesión</title>
</head>
<body>
  <main>
    <h1>Distriquim</h1>
    <form method="post" action="/api/auth/login" id="login-form">
      <label>Email <input type="email" name="email" required></label>
      <label>Contraseña <input type="password" name="password" required></label>
      <button type="submit">Ingresar</button>
    </form>
  </main>
  <script src="/static/login.js"></script>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Distriquim — Portal</title>
</head>
<body>
  <div id="app"></div>
  <script src="/static/app.js"></script>
</body>
</html>`
