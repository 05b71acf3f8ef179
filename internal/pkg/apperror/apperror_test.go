package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", NotFound("note", 5), ErrNotFound},
		{"validation", ValidationFailed("title", "Title is required."), ErrValidation},
		{"duplicate", DuplicateEmail("a@b.c"), ErrDuplicateEmail},
		{"credentials", InvalidCredentials(ErrWrongPassword), ErrInvalidCredentials},
		{"unauthenticated", Unauthenticated(), ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			wrapped := fmt.Errorf("handler: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
		})
	}
}

func TestInvalidCredentials_KeepsReasonForLogs(t *testing.T) {
	miss := InvalidCredentials(ErrUserNotFound)
	wrong := InvalidCredentials(ErrWrongPassword)

	assert.ErrorIs(t, miss, ErrUserNotFound)
	assert.ErrorIs(t, wrong, ErrWrongPassword)
	assert.Equal(t, miss.Error(), wrong.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "note 5 not found", Message(NotFound("note", 5), "x"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
}
