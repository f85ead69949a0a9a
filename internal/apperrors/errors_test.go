// internal/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	assert.True(t, IsValidation(Validation("price", "must be a number")))
	assert.True(t, IsConflict(Conflict("product", "name already in use")))
	assert.True(t, IsNotFound(NotFound("category")))

	internal := Internal("create product", errors.New("connection reset"))
	assert.False(t, IsValidation(internal))
	assert.False(t, IsConflict(internal))
	assert.False(t, IsNotFound(internal))
}

func TestClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("save aggregate: %w", Conflict("product", "duplicate"))
	assert.True(t, IsConflict(wrapped))
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("write facet", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "write facet")
}

func TestValidationMessage(t *testing.T) {
	err := Validation("slug", "too long")
	assert.Contains(t, err.Error(), "slug")
	assert.Contains(t, err.Error(), "too long")
}
