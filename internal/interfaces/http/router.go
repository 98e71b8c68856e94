package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-pro/internal/application/analytics"
	"github.com/jhoicas/inventory-pro/internal/application/auth"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       *inventory.Store
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string // vacío = API sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/login", authHandler.Login)
	}

	protected := api
	if deps.JWTSecret != "" {
		protected = api.Group("", AuthMiddleware(deps.JWTSecret))
	}

	productHandler := NewProductHandler(deps.Store)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/stock", productHandler.Stock)

	locationHandler := NewLocationHandler(deps.Store)
	locations := protected.Group("/locations")
	locations.Get("/", locationHandler.List)
	locations.Post("/", locationHandler.Create)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	movementHandler := NewMovementHandler(deps.Store)
	protected.Get("/movements", movementHandler.List)
	protected.Post("/movements", movementHandler.Create)
	protected.Get("/stock", movementHandler.StockLevels)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/stock", reportHandler.StockReport)
	protected.Get("/reports/stock.pdf", reportHandler.StockReportPDF)
	protected.Get("/reports/stock.xml", reportHandler.StockReportXML)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/dashboard/activity", dashboardHandler.GetActivity)
}
