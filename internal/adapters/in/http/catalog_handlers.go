package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/catalog"

	"github.com/labstack/echo/v4"
)

// Categories handles GET /product-categories.
func (s *Server) Categories(c echo.Context) error {
	categories, err := s.handlers.GetCategories.Handle(c.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"product-categories": categories})
}

// Category handles GET /product-categories/:id.
func (s *Server) Category(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	query, err := queries.NewGetCategoryQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	category, err := s.handlers.GetCategory.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"product-category": category})
}

// CreateCategory handles POST /product-categories.
func (s *Server) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	if validationErr := req.validateCreate(); validationErr != nil {
		return respondError(c, validationErr)
	}

	cmd, err := commands.NewCreateCategoryCommand(*req.Name)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusCreated, msgCategoryCreated)
}

// UpdateCategory handles PATCH /product-categories/:id/edit.
func (s *Server) UpdateCategory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	var req categoryRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	if validationErr := req.validateUpdate(); validationErr != nil {
		return respondError(c, validationErr)
	}

	cmd, err := commands.NewUpdateCategoryCommand(id, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgCategoryUpdated)
}

// DeleteCategory handles DELETE /product-categories/:id.
func (s *Server) DeleteCategory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	cmd, err := commands.NewDeleteCategoryCommand(id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgCategoryDeleted)
}

// Products handles GET /products.
func (s *Server) Products(c echo.Context) error {
	products, err := s.handlers.GetProducts.Handle(c.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// Product handles GET /products/:id.
func (s *Server) Product(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	product, err := s.handlers.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	if validationErr := req.validate(); validationErr != nil {
		return respondError(c, validationErr)
	}

	cmd, err := commands.NewCreateProductCommand(
		*req.Name, *req.Composition, *req.Calories, *req.Price, *req.CategoryID,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusCreated, msgProductCreated)
}

// UpdateProduct handles PATCH /products/:id/edit.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	var req updateProductRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	patch := catalog.ProductPatch{
		Name:        req.Name,
		Composition: req.Composition,
		Calories:    req.Calories,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}

	cmd, err := commands.NewUpdateProductCommand(id, patch)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgProductUpdated)
}

// DeleteProduct handles DELETE /products/:id.
func (s *Server) DeleteProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgProductDeleted)
}

// methodMessages carries the kind-specific wording for method writes.
type methodMessages struct {
	created string
	updated string
	deleted string
}

var methodWording = map[catalog.MethodKind]methodMessages{
	catalog.MethodKindPayment: {
		created: msgPaymentMethodCreated,
		updated: msgPaymentMethodUpdated,
		deleted: msgPaymentMethodDeleted,
	},
	catalog.MethodKindDelivery: {
		created: msgDeliveryMethodCreated,
		updated: msgDeliveryMethodUpdated,
		deleted: msgDeliveryMethodDeleted,
	},
}

// listMethods returns the GET handler for /payment-methods or /delivery-methods.
func (s *Server) listMethods(kind catalog.MethodKind) echo.HandlerFunc {
	key := string(kind) + "-methods"
	return func(c echo.Context) error {
		query, err := queries.NewGetMethodsQuery(kind)
		if err != nil {
			return respondError(c, err)
		}

		methods, err := s.handlers.GetMethods.Handle(c.Request().Context(), query)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{key: methods})
	}
}

// getMethod returns the GET handler for a single method of the given kind.
func (s *Server) getMethod(kind catalog.MethodKind) echo.HandlerFunc {
	key := string(kind) + "-method"
	return func(c echo.Context) error {
		id, ok := pathID(c)
		if !ok {
			return message(c, http.StatusNotFound, msgNotFound)
		}

		query, err := queries.NewGetMethodQuery(kind, id)
		if err != nil {
			return respondError(c, err)
		}

		method, err := s.handlers.GetMethod.Handle(c.Request().Context(), query)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{key: method})
	}
}

// createMethod returns the POST handler for a method kind.
func (s *Server) createMethod(kind catalog.MethodKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req methodRequest
		if bindErr := bindRequest(c, &req); bindErr != nil {
			return respondError(c, bindErr)
		}

		if validationErr := req.validate(); validationErr != nil {
			return respondError(c, validationErr)
		}

		cmd, err := commands.NewCreateMethodCommand(kind, *req.Name)
		if err != nil {
			return respondError(c, err)
		}

		if err = s.handlers.CreateMethod.Handle(c.Request().Context(), cmd); err != nil {
			return respondError(c, err)
		}

		return message(c, http.StatusCreated, methodWording[kind].created)
	}
}

// updateMethod returns the PATCH handler for a method kind. The name is
// required on update, unlike the other catalog entities.
func (s *Server) updateMethod(kind catalog.MethodKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := pathID(c)
		if !ok {
			return message(c, http.StatusNotFound, msgNotFound)
		}

		var req methodRequest
		if bindErr := bindRequest(c, &req); bindErr != nil {
			return respondError(c, bindErr)
		}

		if validationErr := req.validate(); validationErr != nil {
			return respondError(c, validationErr)
		}

		cmd, err := commands.NewUpdateMethodCommand(kind, id, *req.Name)
		if err != nil {
			return respondError(c, err)
		}

		if err = s.handlers.UpdateMethod.Handle(c.Request().Context(), cmd); err != nil {
			return respondError(c, err)
		}

		return message(c, http.StatusOK, methodWording[kind].updated)
	}
}

// deleteMethod returns the DELETE handler for a method kind.
func (s *Server) deleteMethod(kind catalog.MethodKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := pathID(c)
		if !ok {
			return message(c, http.StatusNotFound, msgNotFound)
		}

		cmd, err := commands.NewDeleteMethodCommand(kind, id)
		if err != nil {
			return respondError(c, err)
		}

		if err = s.handlers.DeleteMethod.Handle(c.Request().Context(), cmd); err != nil {
			return respondError(c, err)
		}

		return message(c, http.StatusOK, methodWording[kind].deleted)
	}
}
