package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// User-facing response messages. The wording is part of the public API
// contract and must not be rephrased.
const (
	msgAccessDenied   = "Отказано в доступе"
	msgBadCredentials = "Неверные учетные данные"
	msgUserRegistered = "Пользователь успешно зарегистрирован"
	msgLoggedOut      = "Вы вышли из системы"

	msgAddressCreated = "Адрес успешно добавлен"
	msgAddressUpdated = "Адрес успешно обновлен"
	msgAddressDeleted = "Адрес успешно удален"

	msgCategoryCreated = "Категория товаров была успешно добавлена"
	msgCategoryUpdated = "Категория товаров была успешно обновлена"
	msgCategoryDeleted = "Категория товаров была успешно удалена"

	msgProductCreated = "Продукт был успешно создан"
	msgProductUpdated = "Продукт был успешно обновлен"
	msgProductDeleted = "Продукт был успешно удален"

	msgPaymentMethodCreated = "Способ оплаты был успешно добавлен"
	msgPaymentMethodUpdated = "Способ оплаты был успешно обновлен"
	msgPaymentMethodDeleted = "Способ оплаты был успешно удален"

	msgDeliveryMethodCreated = "Способ доставки был успешно создан"
	msgDeliveryMethodUpdated = "Способ доставки был успешно обновлен"
	msgDeliveryMethodDeleted = "Способ доставки был успешно удален"

	msgOrderCreated = "Заказ успешно создан"
	// The order update endpoint answers with the address wording; clients
	// depend on it.
	msgOrderUpdated = "Адрес успешно обновлен"
	msgOrderDeleted = "Заказ был успешно удален"

	msgAddressNotAccessible = "У вас нет доступа к данному адресу"

	msgNotFound    = "Not Found"
	msgServerError = "Server Error"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, messageResponse{Message: msg})
}

// respondError maps application errors to the HTTP contract: field validation
// failures and bad credentials are 422, authorization failures 403, missing
// objects 404, everything else 500.
func respondError(c echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: validationErr.Fields})
	}

	switch {
	case errors.Is(err, errs.ErrBadCredentials):
		return message(c, http.StatusUnprocessableEntity, msgBadCredentials)
	case errors.Is(err, errs.ErrForbidden):
		return message(c, http.StatusForbidden, msgAccessDenied)
	case errors.Is(err, errs.ErrObjectNotFound):
		return message(c, http.StatusNotFound, msgNotFound)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return message(c, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	case errors.Is(err, commands.ErrAddressNotAccessible):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: msgAddressNotAccessible})
	default:
		return message(c, http.StatusInternalServerError, msgServerError)
	}
}
