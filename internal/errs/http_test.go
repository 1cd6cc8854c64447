package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	code := "USER_NOT_FOUND"

	assert.Equal(t, "NOT_FOUND", NewNotFoundError("x", false, nil).Code)
	assert.Equal(t, code, NewNotFoundError("x", false, &code).Code)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("x", false, nil, nil, nil).Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", NewInternalServerError().Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", NewServiceUnavailableError("x").Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", NewTooManyRequestsError("x").Code)
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewUnauthorizedError("no", false))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessageCopies(t *testing.T) {
	base := NewForbiddenError("original", true)
	changed := base.WithMessage("changed")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "changed", changed.Message)
	assert.Equal(t, base.Status, changed.Status)
}
