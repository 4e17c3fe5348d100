package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

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
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("mobile")

		assert.Equal(t, "mobile", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: mobile", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("mobile", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: mobile (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("sellerId")

	assert.Equal(t, "sellerId", err.ParamName)
	assert.Equal(t, "value is required: sellerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("orderPiece", 0, 1, 10000)

	assert.Equal(t, "orderPiece", err.ParamName)
	assert.Equal(t, "value is invalid: 0 is orderPiece, min value is 1, max value is 10000", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())

	t.Run("sanitize function with newlines", func(t *testing.T) {
		rangeErr := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, rangeErr.Error(), "hello world")
		assert.NotContains(t, rangeErr.Error(), "\n")
	})
}

func TestCredentialExpiredError(t *testing.T) {
	err := errs.NewCredentialExpiredError("+919876543210_SECURE_DISPATCH")

	assert.Equal(t, "+919876543210_SECURE_DISPATCH", err.CredentialID)
	assert.Equal(t, "credential expired: +919876543210_SECURE_DISPATCH", err.Error())
	assert.Equal(t, errs.ErrCredentialExpired, err.Unwrap())
}

func TestCredentialAlreadyUsedError(t *testing.T) {
	err := errs.NewCredentialAlreadyUsedError("+919876543210_SECURE_DISPATCH")

	assert.Equal(t, "credential already used: +919876543210_SECURE_DISPATCH", err.Error())
	assert.Equal(t, errs.ErrCredentialAlreadyUsed, err.Unwrap())
}

func TestNotAuthorizedError(t *testing.T) {
	err := errs.NewNotAuthorizedError("seller-1", "order-9")

	assert.Equal(t, "seller-1", err.ActorID)
	assert.Equal(t, "not authorized: actor is: seller-1, object is: order-9", err.Error())
	assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
}

func TestTransientError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewTransientError("commit dispatch batch", cause)

	assert.Equal(t, "transient failure: commit dispatch batch (cause: connection reset)", err.Error())
	assert.Equal(t, errs.ErrTransient, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("mobile"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("sellerId"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", 0, 1, 10), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewCredentialExpiredError("otp-1"), errs.ErrCredentialExpired)
	require.ErrorIs(t, errs.NewCredentialAlreadyUsedError("otp-1"), errs.ErrCredentialAlreadyUsed)
	require.ErrorIs(t, errs.NewNotAuthorizedError("a", "b"), errs.ErrNotAuthorized)
	require.ErrorIs(t, errs.NewTransientError("op", errors.New("x")), errs.ErrTransient)
}
