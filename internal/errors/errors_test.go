package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FottenSC/FrameData/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := errors.NotFound("no batch stored for Alisa")
	wrapped := errors.Wrap(base, "import failed")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.True(t, errors.IsNotFound(wrapped))
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("boom"), "request failed")
	assert.Equal(t, errors.CodeInternal, errors.GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := errors.WrapWithCode(stderrors.New("timeout"), errors.CodeDeadlineExceeded, "request canceled")
	assert.Equal(t, errors.CodeDeadlineExceeded, errors.GetCode(wrapped))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors builds nil", func(t *testing.T) {
		assert.NoError(t, errors.NewValidationBuilder().Build())
	})

	t.Run("fields reported in sorted order", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			RequiredField("Client").
			InvalidField("BaseURL", "not a URL").
			Build()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t,
			"INVALID_ARGUMENT: validation failed: BaseURL: is invalid: not a URL; Client: is required",
			err.Error())
	})
}
