package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatureforge/card-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "session not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "session not found", err.Message)
	assert.Equal(t, "NOT_FOUND: session not found", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("session not found")
	wrapped := errors.Wrap(inner, "failed to load session")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, inner, stderrors.Unwrap(wrapped))
}

func TestWrap_DefaultsToInternal(t *testing.T) {
	inner := stderrors.New("connection refused")
	wrapped := errors.Wrap(inner, "redis unavailable")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.True(t, errors.IsInternal(wrapped))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "should be nil"))
}

func TestWrapf(t *testing.T) {
	inner := errors.InvalidArgument("bad color")
	wrapped := errors.Wrapf(inner, "failed to toggle color %q", "Crimson")

	assert.Equal(t, errors.CodeInvalidArgument, wrapped.Code)
	assert.Contains(t, wrapped.Message, `"Crimson"`)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Code
	}{
		{"nil error", nil, errors.CodeOK},
		{"coded error", errors.Unavailable("image service down"), errors.CodeUnavailable},
		{"plain error", stderrors.New("boom"), errors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetCode(tt.err))
		})
	}
}

func TestIs_MatchesOnCode(t *testing.T) {
	err := errors.FailedPrecondition("wizard is not on the interview step")

	assert.True(t, stderrors.Is(err, errors.FailedPrecondition("anything")))
	assert.False(t, stderrors.Is(err, errors.NotFound("anything")))
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("invalid input").
		WithMeta("field", "hp").
		WithMeta("value", -1)

	assert.Equal(t, "hp", err.Meta["field"])
	assert.Equal(t, -1, err.Meta["value"])
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeFailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.CodeDeadlineExceeded, http.StatusGatewayTimeout},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestValidationBuilder_NoErrors(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	assert.NoError(t, err)
}

func TestValidationBuilder_CollectsFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("playerID").
		InvalidField("hp", "must be at least 1").
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	var coded *errors.Error
	require.True(t, errors.As(err, &coded))
	fields, ok := coded.Meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "playerID")
	assert.Contains(t, fields, "hp")
}

func TestValidateRequired(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "   ", vb)
	errors.ValidateRequired("type", "Fire", vb)

	err := vb.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.NotContains(t, err.Error(), "type")
}

func TestValidateEnum(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("harmony", "Clash", []string{"Harmonize", "Contrast", "Surprise Me"}, vb)

	err := vb.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}
