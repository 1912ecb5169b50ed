package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rafaelperez/tienda-online/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SellerUC  *usecase.SellerUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1", BearerPlaceholder(deps.JWTSecret))

	sellers := api.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellers.Post("/", sellerHandler.Create)
	sellers.Get("/", sellerHandler.GetAll)
	sellers.Get("/:id", sellerHandler.GetByID)
	sellers.Put("/:id", sellerHandler.Update)
	sellers.Delete("/:id", sellerHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.GetAll)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
