package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ItemUC       *usecase.ItemUseCase
	OrderUC      *orders.OrderUseCase
	OrderSheetUC *orders.OrderSheetUseCase
	StatusUC     *usecase.StatusUseCase
	CategoryUC   *usecase.CategoryUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	SupplierUC   *usecase.SupplierUseCase
	ClientUC     *usecase.ClientUseCase
	RoleUC       *usecase.RoleUseCase
	PermissionUC *usecase.PermissionUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderSheetUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.UpdateHeader)
	ordersGroup.Put("/:id/lines/:itemId", orderHandler.UpdateLine)
	ordersGroup.Post("/:id/close", orderHandler.Close)
	ordersGroup.Get("/:id/sheet", orderHandler.Sheet)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Statuses (protegido)
	statuses := protected.Group("/statuses")
	statusHandler := NewStatusHandler(deps.StatusUC)
	statuses.Post("/", statusHandler.Create)
	statuses.Get("/", statusHandler.ListByCategory)
	statuses.Get("/:id", statusHandler.GetByID)
	statuses.Delete("/:id", statusHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", categoryHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Delete("/:id", clientHandler.Delete)

	// Roles y permisos (protegido, solo admin)
	roleHandler := NewRoleHandler(deps.RoleUC, deps.PermissionUC)
	roles := protected.Group("/roles", RequireRole("admin"))
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Delete("/:id", roleHandler.Delete)
	roles.Put("/:id/permissions", roleHandler.ReplacePermissions)
	roles.Post("/:id/permissions/:permId", roleHandler.Grant)
	roles.Delete("/:id/permissions/:permId", roleHandler.Revoke)

	permissions := protected.Group("/permissions", RequireRole("admin"))
	permissions.Post("/", roleHandler.CreatePermission)
	permissions.Get("/", roleHandler.ListPermissions)
	permissions.Get("/:id", roleHandler.GetPermission)
	permissions.Delete("/:id", roleHandler.DeletePermission)
}
