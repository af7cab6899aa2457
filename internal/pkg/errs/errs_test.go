package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "A1")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "A1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order A1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("order", "A1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order A1 (cause: record not found)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("order", "A1")

	assert.Equal(t, "object already exists: order A1", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	withCause := errs.NewObjectAlreadyExistsErrorWithCause("order", "A1", errors.New("duplicated key"))
	assert.Equal(t, "object already exists: order A1 (cause: duplicated key)", withCause.Error())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: unknown status)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("id")

		assert.Equal(t, "id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: id", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank after trimming")
		err := errs.NewValueIsRequiredErrorWithCause("items", cause)

		assert.Equal(t, "value is required: items (cause: blank after trimming)", err.Error())
	})
}

func TestStorageFailureError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewStorageFailureError("add order", cause)

	assert.Equal(t, "storage failure: add order (cause: connection refused)", err.Error())
	require.ErrorIs(t, err, errs.ErrStorageFailure)
	require.ErrorIs(t, err, cause)

	noCause := errs.NewStorageFailureError("commit", nil)
	assert.Equal(t, "storage failure: commit", noCause.Error())
	require.ErrorIs(t, noCause, errs.ErrStorageFailure)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "storage failure", errs.ErrStorageFailure.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works through fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("complete order: %w", errs.NewObjectNotFoundError("order", "A1"))
		require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	})

	t.Run("IsInvalidInput", func(t *testing.T) {
		assert.True(t, errs.IsInvalidInput(errs.NewValueIsRequiredError("id")))
		assert.True(t, errs.IsInvalidInput(errs.NewValueIsInvalidError("status")))
		assert.True(t, errs.IsInvalidInput(errors.Join(errs.NewValueIsRequiredError("id"), errors.New("other"))))
		assert.False(t, errs.IsInvalidInput(errs.NewObjectNotFoundError("order", "A1")))
		assert.False(t, errs.IsInvalidInput(nil))
	})
}
