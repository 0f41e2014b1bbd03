package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title *string `json:"title" validate:"omitempty,notblank,max=10"`
	Ref   string  `json:"ref" validate:"omitempty,objectid"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

func TestNotBlank(t *testing.T) {
	v := newValidator()

	blank := "   "
	err := v.Struct(sample{Title: &blank})
	require.Error(t, err)

	verrs := err.(validator.ValidationErrors)
	assert.Equal(t, "title", verrs[0].Field())
	assert.Equal(t, "notblank", verrs[0].Tag())

	ok := "Dune"
	assert.NoError(t, v.Struct(sample{Title: &ok}))
	assert.NoError(t, v.Struct(sample{}))
}

func TestObjectID(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(sample{Ref: "507f1f77bcf86cd799439011"}))

	err := v.Struct(sample{Ref: "not-an-id"})
	require.Error(t, err)
	assert.Equal(t, "objectid", err.(validator.ValidationErrors)[0].Tag())
}
