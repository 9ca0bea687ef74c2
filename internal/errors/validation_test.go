package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doomforge/ngplus/internal/errors"
)

func TestValidationBuilder_Empty(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())
}

func TestValidationBuilder_CollectsFields(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("draftID")
	vb.InvalidField("argentLevels.health", "must be between 0 and 4")

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.ErrorContains(t, err, "draftID: is required")
	assert.ErrorContains(t, err, "argentLevels.health: is invalid: must be between 0 and 4")
}

func TestValidateRequired(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", "", vb)
	errors.ValidateRequired("name", "slayer", vb)

	err := vb.Build()
	require.Error(t, err)
	assert.ErrorContains(t, err, "draftID")
	assert.NotContains(t, err.Error(), "name")
}
