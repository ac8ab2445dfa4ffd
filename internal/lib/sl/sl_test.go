package sl_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	attr := sl.Err(errors.New("something went wrong"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "<nil>", sl.Err(nil).Value.String())
	})
}

func TestVisitor(t *testing.T) {
	attr := sl.Visitor("v1")

	assert.Equal(t, "visitor_id", attr.Key)
	assert.Equal(t, "v1", attr.Value.String())
}
