package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestBindRequest(t *testing.T) {
	t.Run("should report a mistyped string field", func(t *testing.T) {
		c, _ := newJSONContext(t, `{"status":123}`)

		var req updateOrderRequest
		bindErr := bindRequest(c, &req)

		require.NotNil(t, bindErr)
		assert.Contains(t, bindErr.Fields["status"], "The status must be a string.")
	})

	t.Run("should report a mistyped integer field", func(t *testing.T) {
		c, _ := newJSONContext(t, `{"house_number":"five"}`)

		var req createAddressRequest
		bindErr := bindRequest(c, &req)

		require.NotNil(t, bindErr)
		assert.Contains(t, bindErr.Fields["house_number"], "The house number must be an integer.")
	})

	t.Run("should pass through a valid body", func(t *testing.T) {
		c, _ := newJSONContext(t, `{"email":"ivan@example.com","password":"secret1"}`)

		var req loginRequest
		require.Nil(t, bindRequest(c, &req))
		assert.Equal(t, "ivan@example.com", req.Email)
	})

	t.Run("should leave a malformed body to the field validators", func(t *testing.T) {
		c, _ := newJSONContext(t, `{not json`)

		var req loginRequest
		require.Nil(t, bindRequest(c, &req))

		validationErr := req.validate()
		require.NotNil(t, validationErr)
		assert.Contains(t, validationErr.Fields["email"], "The email field is required.")
		assert.Contains(t, validationErr.Fields["password"], "The password field is required.")
	})
}

func TestUpdateOrder_MistypedStatus_ReturnsValidationEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/orders/5/edit", strings.NewReader(`{"status":123}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	server := NewServer(Handlers{})
	require.NoError(t, server.UpdateOrder(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors["status"], "The status must be a string.")
}

func TestCreateProductRequest_CategoryIDField(t *testing.T) {
	t.Run("should bind the category_id key", func(t *testing.T) {
		c, _ := newJSONContext(t,
			`{"name":"Маргарита","composition":"Томаты","calories":850,"price":500,"category_id":3}`)

		var req createProductRequest
		require.Nil(t, bindRequest(c, &req))
		require.Nil(t, req.validate())
		require.NotNil(t, req.CategoryID)
		assert.Equal(t, uint64(3), *req.CategoryID)
	})

	t.Run("should report a missing category under the category_id key", func(t *testing.T) {
		c, _ := newJSONContext(t,
			`{"name":"Маргарита","composition":"Томаты","calories":850,"price":500}`)

		var req createProductRequest
		require.Nil(t, bindRequest(c, &req))

		validationErr := req.validate()
		require.NotNil(t, validationErr)
		assert.Contains(t, validationErr.Fields["category_id"], "The category id field is required.")
	})
}
