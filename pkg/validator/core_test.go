package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigforge/sigforge/pkg/validator"
)

func pass(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Message: "should not fire"},
	}
}

func fail(field, msg string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: msg},
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil on all passing", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass("a"), pass("b")))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(fail("a", "first"), pass("b"), fail("c", "second"))
		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 2)
		assert.Equal(t, "a", ve[0].Field)
		assert.Equal(t, "c", ve[1].Field)
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("nil on all passing", func(t *testing.T) {
		assert.NoError(t, validator.First(pass("a"), pass("a")))
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		err := validator.First(pass("a"), fail("a", "one"), fail("a", "two"))
		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 1)
		assert.Equal(t, "one", ve[0].Message)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	ve := validator.ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "title", Message: "Job title is required"},
	}

	assert.True(t, ve.Has("name"))
	assert.False(t, ve.Has("phone"))
	assert.Equal(t, []string{"Name is required"}, ve.Get("name"))
	assert.Equal(t, []string{"name", "title"}, ve.Fields())
	assert.False(t, ve.IsEmpty())
	assert.Equal(t, "validation failed: name: Name is required; title: Job title is required", ve.Error())
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validator.Message(nil))
	assert.Empty(t, validator.Message(errors.New("plain")))
	assert.Equal(t, "one", validator.Message(validator.ValidationErrors{{Field: "a", Message: "one"}}))
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{Field: "a"}}))
}
