package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para montar las rutas.
type RouterDeps struct {
	JWTSecret string

	Auth        *AuthHandler
	Sale        *SaleHandler
	Purchase    *PurchaseHandler
	Transaction *TransactionHandler
	Client      *ClientHandler
	Supplier    *SupplierHandler
	Product     *ProductHandler
	Service     *ServiceHandler
	Event       *EventHandler
}

// Router registra todas las rutas de la API. Todo salvo /api/auth va
// detrás del middleware JWT.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	sales := protected.Group("/sales")
	sales.Post("/", deps.Sale.Create)
	sales.Get("/", deps.Sale.List)
	sales.Get("/:id", deps.Sale.GetByID)
	sales.Put("/:id", deps.Sale.Update)
	sales.Post("/:id/close", deps.Sale.Close)
	sales.Post("/:id/cancel", deps.Sale.Cancel)
	sales.Post("/:id/payments", deps.Sale.AddPayment)

	purchases := protected.Group("/purchases")
	purchases.Post("/", deps.Purchase.Create)
	purchases.Get("/", deps.Purchase.List)
	purchases.Get("/:id", deps.Purchase.GetByID)
	purchases.Put("/:id", deps.Purchase.Update)
	purchases.Post("/:id/close", deps.Purchase.Close)
	purchases.Post("/:id/cancel", deps.Purchase.Cancel)
	purchases.Post("/:id/payments", deps.Purchase.AddPayment)

	transactions := protected.Group("/transactions")
	transactions.Post("/", deps.Transaction.Create)
	transactions.Get("/", deps.Transaction.List)
	// La ruta fija va antes que :id para que Fiber no la capture.
	transactions.Get("/cashflow", deps.Transaction.CashFlow)
	transactions.Get("/:id", deps.Transaction.GetByID)

	clients := protected.Group("/clients")
	clients.Post("/", deps.Client.Create)
	clients.Get("/", deps.Client.List)
	clients.Get("/:id", deps.Client.GetByID)
	clients.Put("/:id", deps.Client.Update)
	clients.Patch("/:id/active", deps.Client.SetActive)

	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", deps.Supplier.Create)
	suppliers.Get("/", deps.Supplier.List)
	suppliers.Get("/:id", deps.Supplier.GetByID)
	suppliers.Put("/:id", deps.Supplier.Update)
	suppliers.Patch("/:id/active", deps.Supplier.SetActive)

	products := protected.Group("/products")
	products.Post("/", deps.Product.Create)
	products.Get("/", deps.Product.List)
	products.Get("/:id", deps.Product.GetByID)
	products.Put("/:id", deps.Product.Update)
	products.Post("/:id/stock", deps.Product.AdjustStock)
	products.Patch("/:id/active", deps.Product.SetActive)

	services := protected.Group("/services")
	services.Post("/", deps.Service.Create)
	services.Get("/", deps.Service.List)
	services.Get("/:id", deps.Service.GetByID)
	services.Put("/:id", deps.Service.Update)
	services.Patch("/:id/active", deps.Service.SetActive)

	events := protected.Group("/events")
	events.Post("/", deps.Event.Create)
	events.Get("/", deps.Event.List)
	events.Get("/:id", deps.Event.GetByID)
	events.Put("/:id", deps.Event.Update)
	events.Delete("/:id", deps.Event.Delete)
}
