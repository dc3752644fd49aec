package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Brands         *usecase.BrandService
	Categories     *usecase.CategoryService
	Suppliers      *usecase.SupplierService
	Products       *usecase.ProductService
	PurchaseOrders *usecase.PurchaseOrderService
	Roles          *usecase.RoleService
	Users          *usecase.UserService
	AuthUC         *auth.AuthUseCase
	Uploads        tempSaver
	Validator      *Validator
	JWTSecret      string
}

// Router registra las rutas de la API bajo /api.
// Lecturas: cualquier usuario autenticado. Mutaciones: solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	val := deps.Validator
	if val == nil {
		val = NewValidator()
	}
	api := app.Group("/api")

	// Auth (público); debe registrarse antes del grupo protegido
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, val)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/uploads", NewUploadHandler(deps.Uploads).Upload)

	NewCRUDHandler[dto.BrandRequest, dto.BrandResponse](deps.Brands, val).mount(protected, "/brands", adminOnly)
	NewCRUDHandler[dto.CategoryRequest, dto.CategoryResponse](deps.Categories, val).mount(protected, "/categories", adminOnly)
	NewCRUDHandler[dto.SupplierRequest, dto.SupplierResponse](deps.Suppliers, val).mount(protected, "/suppliers", adminOnly)
	NewCRUDHandler[dto.RoleRequest, dto.RoleResponse](deps.Roles, val).mount(protected, "/roles", adminOnly)
	NewCRUDHandler[dto.UserRequest, dto.UserResponse](deps.Users, val).mount(protected, "/users", adminOnly)

	productHandler := NewProductHandler(deps.Products, val)
	products := productHandler.mount(protected, "/products", adminOnly)
	products.Get("/:id/details", productHandler.Details)

	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrders, val)
	orders := orderHandler.mount(protected, "/purchase-orders", adminOnly)
	orders.Get("/:id/details", orderHandler.Details)
	orders.Get("/:id/pdf", orderHandler.PDF)
}
