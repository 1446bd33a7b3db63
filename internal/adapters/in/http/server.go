// Package http exposes the order management API over echo. Routes are
// guarded by the role gate; callers are resolved from bearer tokens by the
// auth middleware.
package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	RegisterUser commands.RegisterUserCommandHandler
	Login        commands.LoginCommandHandler
	Logout       commands.LogoutCommandHandler

	CreateAddress commands.CreateAddressCommandHandler
	UpdateAddress commands.UpdateAddressCommandHandler
	DeleteAddress commands.DeleteAddressCommandHandler

	CreateCategory commands.CreateCategoryCommandHandler
	UpdateCategory commands.UpdateCategoryCommandHandler
	DeleteCategory commands.DeleteCategoryCommandHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler

	CreateMethod commands.CreateMethodCommandHandler
	UpdateMethod commands.UpdateMethodCommandHandler
	DeleteMethod commands.DeleteMethodCommandHandler

	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	GetUser  queries.GetUserQueryHandler
	GetUsers queries.GetUsersQueryHandler

	GetAddresses queries.GetAddressesQueryHandler
	GetAddress   queries.GetAddressQueryHandler

	GetCategories queries.GetCategoriesQueryHandler
	GetCategory   queries.GetCategoryQueryHandler
	GetProducts   queries.GetProductsQueryHandler
	GetProduct    queries.GetProductQueryHandler
	GetMethods    queries.GetMethodsQueryHandler
	GetMethod     queries.GetMethodQueryHandler

	GetOrders queries.GetOrdersQueryHandler
	GetOrder  queries.GetOrderQueryHandler
}

// Server dispatches HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// RegisterRoutes attaches the full route table to the echo instance. The auth
// middleware runs on every route; role requirements are declared per route.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.Use(auth.Authenticate)

	guest := RequireRoles(account.RoleGuest)
	authenticated := RequireRoles(account.RoleAdmin, account.RoleClient)
	admin := RequireRoles(account.RoleAdmin)

	e.GET("/health", s.Health)

	e.POST("/register", s.Register, guest)
	e.POST("/login", s.Login, guest)
	e.GET("/user", s.CurrentUser, authenticated)
	e.GET("/logout", s.Logout, authenticated)
	e.GET("/users", s.Users, admin)

	e.GET("/addresses", s.Addresses, authenticated)
	e.POST("/addresses", s.CreateAddress, authenticated)
	e.GET("/addresses/:id", s.Address, authenticated)
	e.PATCH("/addresses/:id/edit", s.UpdateAddress, authenticated)
	e.DELETE("/addresses/:id", s.DeleteAddress, authenticated)

	e.GET("/product-categories", s.Categories)
	e.GET("/product-categories/:id", s.Category)
	e.POST("/product-categories", s.CreateCategory, admin)
	e.PATCH("/product-categories/:id/edit", s.UpdateCategory, admin)
	e.DELETE("/product-categories/:id", s.DeleteCategory, admin)

	e.GET("/products", s.Products)
	e.GET("/products/:id", s.Product)
	e.POST("/products", s.CreateProduct, admin)
	e.PATCH("/products/:id/edit", s.UpdateProduct, admin)
	e.DELETE("/products/:id", s.DeleteProduct, admin)

	e.GET("/orders", s.Orders, authenticated)
	e.POST("/orders", s.CreateOrder, authenticated)
	e.GET("/orders/:id", s.Order, authenticated)
	e.PATCH("/orders/:id/edit", s.UpdateOrder, authenticated)
	e.DELETE("/orders/:id", s.DeleteOrder, authenticated)

	for _, kind := range []catalog.MethodKind{catalog.MethodKindPayment, catalog.MethodKindDelivery} {
		base := "/" + string(kind) + "-methods"
		e.GET(base, s.listMethods(kind))
		e.GET(base+"/:id", s.getMethod(kind))
		e.POST(base, s.createMethod(kind), admin)
		e.PATCH(base+"/:id/edit", s.updateMethod(kind), admin)
		e.DELETE(base+"/:id", s.deleteMethod(kind), admin)
	}
}
