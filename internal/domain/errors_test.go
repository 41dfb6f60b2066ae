// internal/domain/errors_test.go
package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", errors.New("boom"), KindInternal},
		{"not found", NotFound("entity", "Acme"), KindNotFound},
		{"wrapped conflict", fmt.Errorf("update user: %w", Conflict("taken", nil)), KindConflict},
		{"validation", Validation("bad", "x is required"), KindValidation},
		{"auth missing", AuthMissing("no header"), KindAuthMissing},
		{"auth invalid", AuthInvalid(errors.New("expired")), KindAuthInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("service", "Gym")
	assert.Equal(t, "service Gym not found", err.Message)
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", err)))
	assert.False(t, IsNotFound(nil))
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Something went wrong", err.Message)
}
