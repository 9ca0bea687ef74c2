package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doomforge/ngplus/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeInvalidArgument, "bad selection")
	assert.Equal(t, errors.CodeInvalidArgument, err.Code)
	assert.Equal(t, "INVALID_ARGUMENT: bad selection", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFoundf("draft %s not found", "draft-1")
	wrapped := errors.Wrap(inner, "failed to load draft")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrap_ForeignErrorBecomesInternal(t *testing.T) {
	inner := fmt.Errorf("disk on fire")
	wrapped := errors.Wrap(inner, "failed to write archive")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.ErrorContains(t, wrapped, "disk on fire")
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestDomainCodes(t *testing.T) {
	overfilled := errors.ArgentCellOverfilled("every argent cell category is maxed")
	assert.True(t, errors.IsArgentCellOverfilled(overfilled))
	assert.False(t, errors.IsArgentCellOverfilled(errors.Internal("boom")))

	unknown := errors.UnknownItemf("unknown weapon %q", "bfg10k")
	assert.True(t, errors.IsUnknownItem(unknown))
	assert.Equal(t, "UNKNOWN_ITEM: unknown weapon \"bfg10k\"", unknown.Error())
}

func TestWithMeta(t *testing.T) {
	err := errors.ArgentCellOverfilled("maxed").
		WithMeta("health", 4).
		WithMeta("armor", 4)

	require.NotNil(t, err.Meta)
	assert.Equal(t, 4, err.Meta["health"])
	assert.Equal(t, 4, err.Meta["armor"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeUnknownItem, errors.GetCode(errors.UnknownItemf("x")))
}
