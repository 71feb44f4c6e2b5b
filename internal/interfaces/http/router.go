package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiidhanna21/garage/internal/application/auth"
	"github.com/saiidhanna21/garage/internal/application/catalog"
	"github.com/saiidhanna21/garage/internal/application/orders"
	"github.com/saiidhanna21/garage/internal/application/revenue"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CustomerUC *catalog.CustomerUseCase
	ProductUC  *catalog.ProductUseCase
	CategoryUC *catalog.CategoryUseCase
	ItemUC     *catalog.GarageItemUseCase
	OrderUC    *orders.UseCase
	RevenueUC  *revenue.UseCase
	JWTSecret  string
}

// Router registers the API routes. Only login is public; everything
// else requires a Bearer session token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Delete("/:id", customerHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/:id", productHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/:id", categoryHandler.Delete)

	items := protected.Group("/garage-items")
	itemHandler := NewGarageItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.Get)
	items.Delete("/:id", itemHandler.Delete)

	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.CustomerUC, deps.ItemUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/", orderHandler.Place)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	revenueGroup := protected.Group("/revenue")
	revenueHandler := NewRevenueHandler(deps.RevenueUC)
	revenueGroup.Get("/monthly", revenueHandler.List)
	revenueGroup.Get("/monthly/report.pdf", revenueHandler.Report)
}
