package cmd

import (
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/tokenrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/token"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are created
// per call; the shared pieces are the database connection and the token codec.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokenCodec *token.Codec
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenCodec: token.NewCodec(config.JWTSecret),
	}
}

// NewAuthMiddleware creates the bearer token middleware over the main
// connection. Authentication reads need no transaction.
func (c *CompositionRoot) NewAuthMiddleware() *httpadapter.AuthMiddleware {
	return httpadapter.NewAuthMiddleware(
		c.tokenCodec,
		tokenrepo.NewGormTokenRepository(c.gormDB),
		userrepo.NewGormUserRepository(c.gormDB),
	)
}

func (c *CompositionRoot) authUoWFactory() commands.AuthUoWFactory {
	return FuncAuthUoWFactory(func() commands.AuthUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// CreatePurgeExpiredTokensCommandHandler builds the handler driven by the
// token cleanup job.
func (c *CompositionRoot) CreatePurgeExpiredTokensCommandHandler() commands.PurgeExpiredTokensCommandHandler {
	return commands.NewPurgeExpiredTokensCommandHandler(c.authUoWFactory())
}

// NewHTTPHandlers builds the full handler set for the HTTP server.
func (c *CompositionRoot) NewHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		RegisterUser: commands.NewRegisterUserCommandHandler(c.authUoWFactory()),
		Login:        commands.NewLoginCommandHandler(c.authUoWFactory(), c.tokenCodec, c.config.TokenTTL),
		Logout:       commands.NewLogoutCommandHandler(c.authUoWFactory()),

		CreateAddress: commands.NewCreateAddressCommandHandler(c.addressUoWFactory()),
		UpdateAddress: commands.NewUpdateAddressCommandHandler(c.addressUoWFactory()),
		DeleteAddress: commands.NewDeleteAddressCommandHandler(c.addressUoWFactory()),

		CreateCategory: commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory()),
		UpdateCategory: commands.NewUpdateCategoryCommandHandler(c.catalogUoWFactory()),
		DeleteCategory: commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory()),

		CreateProduct: commands.NewCreateProductCommandHandler(c.catalogUoWFactory()),
		UpdateProduct: commands.NewUpdateProductCommandHandler(c.catalogUoWFactory()),
		DeleteProduct: commands.NewDeleteProductCommandHandler(c.catalogUoWFactory()),

		CreateMethod: commands.NewCreateMethodCommandHandler(c.catalogUoWFactory()),
		UpdateMethod: commands.NewUpdateMethodCommandHandler(c.catalogUoWFactory()),
		DeleteMethod: commands.NewDeleteMethodCommandHandler(c.catalogUoWFactory()),

		CreateOrder: commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(c.orderUoWFactory()),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),

		GetUser:  queries.NewGetUserQueryHandler(c.gormDB),
		GetUsers: queries.NewGetUsersQueryHandler(c.gormDB),

		GetAddresses: queries.NewGetAddressesQueryHandler(c.gormDB),
		GetAddress:   queries.NewGetAddressQueryHandler(c.gormDB),

		GetCategories: queries.NewGetCategoriesQueryHandler(c.gormDB),
		GetCategory:   queries.NewGetCategoryQueryHandler(c.gormDB),
		GetProducts:   queries.NewGetProductsQueryHandler(c.gormDB),
		GetProduct:    queries.NewGetProductQueryHandler(c.gormDB),
		GetMethods:    queries.NewGetMethodsQueryHandler(c.gormDB),
		GetMethod:     queries.NewGetMethodQueryHandler(c.gormDB),

		GetOrders: queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:  queries.NewGetOrderQueryHandler(c.gormDB),
	}
}

type FuncAuthUoWFactory func() commands.AuthUoW

func (f FuncAuthUoWFactory) Create() commands.AuthUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
