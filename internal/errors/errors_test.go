package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCode(t *testing.T) {
	base := ConfigInvalid("AB_ALPHA must be in (0, 1)")
	err := Wrap(base, "failed to load configuration")

	assert.Equal(t, CodeConfigInvalid, GetCode(err))
	assert.Equal(t, "failed to load configuration: AB_ALPHA must be in (0, 1)", err.Error())
	assert.True(t, stderrors.Is(err, base))
}

func TestWrap_PlainErrorIsInternal(t *testing.T) {
	sentinel := stderrors.New("boom")
	err := Wrapf(sentinel, "step %d", 3)

	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.True(t, stderrors.Is(err, sentinel))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWrap_FindsCodeThroughFmtWrapping(t *testing.T) {
	err := Wrap(fmt.Errorf("context: %w", NotFound("sheet")), "load")
	assert.Equal(t, CodeNotFound, GetCode(err))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, stderrors.New("bad metric"))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.True(t, IsAppError(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.Nil(t, WithCode(CodeInvalidInput, nil))
}
