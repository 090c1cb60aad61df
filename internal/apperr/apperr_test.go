package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "invalid argument", err: InvalidArgument("query is required"), want: http.StatusBadRequest},
		{name: "internal", err: Internal("boom", errors.New("cause")), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "INVALID_ARGUMENT: query must not be empty", InvalidArgument("query must not be %s", "empty").Error())

	cause := errors.New("disk full")
	err := Internal("write failed", cause)
	assert.Equal(t, "INTERNAL: write failed: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", InvalidArgument("bad"))

	assert.Equal(t, CodeInvalidArgument, From(wrapped).Code)
	assert.True(t, IsInvalidArgument(wrapped))

	plain := errors.New("plain")
	converted := From(plain)
	assert.Equal(t, CodeInternal, converted.Code)
	assert.ErrorIs(t, converted, plain)
	assert.False(t, IsInvalidArgument(plain))
}
