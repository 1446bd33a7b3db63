package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Register handles POST /register. The first user ever registered becomes an
// Admin; everyone after that is a Client.
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	dateOfBirth, validationErr := req.validate()
	if validationErr != nil {
		return respondError(c, validationErr)
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Name, req.Surname, req.Patronymic, req.Email, req.Password, req.Phone, dateOfBirth,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusCreated, msgUserRegistered)
}

// Login handles POST /login and returns a bearer token.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	if validationErr := req.validate(); validationErr != nil {
		return respondError(c, validationErr)
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// CurrentUser handles GET /user.
func (s *Server) CurrentUser(c echo.Context) error {
	caller := callerFromContext(c)

	query, err := queries.NewGetUserQuery(caller.ID)
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// Logout handles GET /logout and revokes every token of the caller.
func (s *Server) Logout(c echo.Context) error {
	caller := callerFromContext(c)

	cmd, err := commands.NewLogoutCommand(caller.ID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgLoggedOut)
}

// Users handles GET /users.
func (s *Server) Users(c echo.Context) error {
	users, err := s.handlers.GetUsers.Handle(c.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
