package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classifies with errors.Is", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", uint64(456))
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: status", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: status (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("accumulates field messages", func(t *testing.T) {
		err := errs.NewValidationError()
		assert.False(t, err.HasErrors())

		err.Add("name", "The name field is required.")
		err.Add("email", "The email must be a valid email address.")
		err.Add("email", "The email has already been taken.")

		assert.True(t, err.HasErrors())
		assert.Equal(t, []string{"The name field is required."}, err.Fields["name"])
		assert.Len(t, err.Fields["email"], 2)
	})

	t.Run("error message lists fields sorted", func(t *testing.T) {
		err := errs.NewValidationError()
		err.Add("street", "The street field is required.")
		err.Add("city", "The city field is required.")

		assert.Equal(t, "validation failed: city, street", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValidationFailed))
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError()

		require.NoError(t, err.Cause)
		assert.Equal(t, "access is forbidden", err.Error())
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("address belongs to another user")
		err := errs.NewForbiddenErrorWithCause(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "access is forbidden (cause: address belongs to another user)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})
}

func TestBadCredentialsError(t *testing.T) {
	err := errs.NewBadCredentialsError()

	assert.Equal(t, "bad credentials", err.Error())
	assert.True(t, errors.Is(err, errs.ErrBadCredentials))
}
