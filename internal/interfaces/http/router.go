package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jhoicas/Distriquim-api/internal/application/auth"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	DistributorUC  *usecase.DistributorUseCase
	DocumentUC     *usecase.DocumentUseCase
	NewsUC         *usecase.NewsUseCase
	NotificationUC *usecase.NotificationUseCase
	ProductUC      *usecase.ProductUseCase
	DashboardUC    *usecase.DashboardUseCase
	JWTSecret      string
	SecureCookie   bool
}

// Router registra páginas y rutas de la API.
//
// Orden importante: las rutas públicas (/login, /api/auth/login) se registran
// antes del middleware de sesión; todo lo demás queda detrás de RequireAuth.
func Router(app *fiber.App, deps RouterDeps) {
	pages := NewPagesHandler()
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookie)

	// Páginas (público: sólo /login)
	app.Get("/login", pages.Login)
	app.Get("/", RequireAuth(deps.JWTSecret), pages.Dashboard)
	app.Get("/dashboard", RequireAuth(deps.JWTSecret), pages.Dashboard)

	api := app.Group("/api")

	// CORS sólo en la superficie API (cliente móvil y SPA)
	api.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Content-Type, Authorization, X-Requested-With",
		MaxAge:       86400,
	}))

	// Auth (login público; el resto de la sesión es protegido)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer token o cookie de sesión)
	protected := api.Group("/", RequireAuth(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Users (sólo administradores)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Distributors (gestión admin; GET /:id permite al distribuidor ver su ficha)
	distributors := protected.Group("/distributors")
	distributorHandler := NewDistributorHandler(deps.DistributorUC)
	distributors.Post("/", admin, distributorHandler.Create)
	distributors.Get("/", admin, distributorHandler.List)
	distributors.Get("/:id", distributorHandler.GetByID)
	distributors.Put("/:id", admin, distributorHandler.Update)
	distributors.Delete("/:id", admin, distributorHandler.Delete)

	// Documents (subida/asignación admin; lectura según asignación)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", admin, documentHandler.Upload)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Get("/:id/file", documentHandler.Download)
	documents.Post("/:id/assign", admin, documentHandler.Assign)
	documents.Delete("/:id", admin, documentHandler.Delete)

	// News (edición admin; lectura de publicados para todos)
	news := protected.Group("/news")
	newsHandler := NewNewsHandler(deps.NewsUC)
	news.Post("/", admin, newsHandler.Create)
	news.Get("/", newsHandler.List)
	news.Get("/:id", newsHandler.GetByID)
	news.Put("/:id", admin, newsHandler.Update)
	news.Post("/:id/publish", admin, newsHandler.Publish)
	news.Delete("/:id", admin, newsHandler.Delete)

	// Notifications (bandeja del distribuidor autenticado)
	notifications := protected.Group("/notifications", RequireRole(entity.RoleDistributor))
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Products (CRUD admin; catálogo y lista de precios para cualquier sesión)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", admin, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/pricelist.pdf", productHandler.PriceList)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Dashboard (sólo administradores)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", admin, dashboardHandler.Get)
}
