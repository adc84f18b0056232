package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/attachments"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/auth"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/orders"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/stock"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/usecase"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	SupplierUC   *usecase.SupplierUseCase
	SettingsUC   *usecase.SettingsUseCase
	StockUC      *stock.UseCase
	ImportUC     *stock.ImportUseCase
	PurchaseUC   *orders.PurchaseUseCase
	WorkUC       *orders.WorkUseCase
	AttachmentUC *attachments.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// RBAC por grupo:
//   - stock: admin y almacenista mutan; cualquier rol autenticado lee.
//   - purchase-orders y suppliers: admin y compras mutan.
//   - work-orders: admin y almacenista mutan.
//   - settings: solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	storeRoles := RequireRole(entity.RoleAdmin, entity.RoleAlmacenista)
	purchasingRoles := RequireRole(entity.RoleAdmin, entity.RoleCompras)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", purchasingRoles, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", purchasingRoles, supplierHandler.Update)
	suppliers.Delete("/:id", purchasingRoles, supplierHandler.Delete)

	// Stock: ítems, ledger de movimientos e importación/exportación masiva
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/items", storeRoles, stockHandler.CreateItem)
	stockGroup.Get("/items", stockHandler.ListItems)
	stockGroup.Get("/items/:id", stockHandler.GetItem)
	stockGroup.Put("/items/:id", storeRoles, stockHandler.UpdateItem)
	stockGroup.Delete("/items/:id", storeRoles, stockHandler.DeleteItem)
	stockGroup.Post("/items/:id/movements", storeRoles, stockHandler.RegisterMovement)
	stockGroup.Get("/items/:id/movements", stockHandler.ListMovements)

	importHandler := NewImportHandler(deps.ImportUC)
	stockGroup.Post("/import", storeRoles, importHandler.Import)
	stockGroup.Get("/export", importHandler.Export)

	// Purchase orders (protegido)
	purchaseGroup := protected.Group("/purchase-orders")
	purchaseHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	purchaseGroup.Post("/", purchasingRoles, purchaseHandler.Create)
	purchaseGroup.Get("/", purchaseHandler.List)
	purchaseGroup.Get("/:id", purchaseHandler.GetByID)
	purchaseGroup.Patch("/:id/status", purchasingRoles, purchaseHandler.Transition)
	purchaseGroup.Delete("/:id", purchasingRoles, purchaseHandler.Delete)

	// Work orders (protegido)
	workGroup := protected.Group("/work-orders")
	workHandler := NewWorkOrderHandler(deps.WorkUC)
	workGroup.Post("/", storeRoles, workHandler.Create)
	workGroup.Get("/", workHandler.List)
	workGroup.Get("/:id", workHandler.GetByID)
	workGroup.Patch("/:id/status", storeRoles, workHandler.Transition)
	workGroup.Delete("/:id", storeRoles, workHandler.Delete)

	// Attachments (protegido)
	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC)
	protected.Post("/documents/:number/attachments", attachmentHandler.Upload)

	// Settings (protegido, solo admin)
	settings := protected.Group("/settings", adminOnly)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/:key", settingsHandler.Get)
	settings.Put("/:key", settingsHandler.Set)
}
