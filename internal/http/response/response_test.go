package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Section string `json:"section" validate:"required,oneof=faq about"`
	Package *int   `json:"package" validate:"required,min=0"`
}

func TestValidationError(t *testing.T) {
	neg := -1
	err := validator.New().Struct(sampleRequest{Section: "shop", Package: &neg})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Section must be one of: faq about")
	assert.Contains(t, resp.Error, "field Package must be at least 0")
}

func TestValidationError_Required(t *testing.T) {
	err := validator.New().Struct(sampleRequest{})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, "field Section is a required field, field Package is a required field", resp.Error)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusOK, Data: 42}, OKWithData(42))
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, Error("boom"))
	assert.Equal(t, Response{Status: StatusError, Error: "bad", Field: "email"}, FieldError("email", "bad"))
}
