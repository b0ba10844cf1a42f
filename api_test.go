package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiTestSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestValidateValidInstance(t *testing.T) {
	result, err := Validate(map[string]interface{}{"name": "Ada", "age": 30}, []byte(apiTestSchema), nil)
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestValidateInvalidInstance(t *testing.T) {
	result, err := Validate(map[string]interface{}{"age": -1}, []byte(apiTestSchema), nil)
	require.NoError(t, err)
	assert.False(t, result.IsValid())
	assert.NotEmpty(t, result.Errors)
}

func TestValidateMalformedSchema(t *testing.T) {
	_, err := Validate(map[string]interface{}{}, []byte(`{"pattern": 5}`), nil)
	require.Error(t, err)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(map[string]interface{}{"name": "Ada"}, []byte(apiTestSchema), nil))
	assert.False(t, IsValid(map[string]interface{}{"age": -1}, []byte(apiTestSchema), nil))
	assert.False(t, IsValid(map[string]interface{}{}, []byte(`{"pattern": 5}`), nil))
}

func TestValidateLazyStopsAtOneError(t *testing.T) {
	result, err := ValidateLazy(map[string]interface{}{"age": -1}, []byte(apiTestSchema), nil)
	require.NoError(t, err)
	assert.False(t, result.IsValid())

	total := 0
	var count func(r *EvaluationResult)
	count = func(r *EvaluationResult) {
		total += len(r.Errors)
		for _, d := range r.Details {
			count(d)
		}
	}
	count(result)
	assert.LessOrEqual(t, total, 1)
}

func TestValidateSchemaAcceptsWellFormedSchema(t *testing.T) {
	result, err := ValidateSchema([]byte(apiTestSchema), nil)
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestValidateSchemaRejectsInvalidRegex(t *testing.T) {
	result, err := ValidateSchema([]byte(`{"pattern": "("}`), nil)
	require.NoError(t, err)
	assert.False(t, result.IsValid())
	assert.NotEmpty(t, result.Errors)
}

func TestValidateWithExplicitDraft(t *testing.T) {
	draft4 := Draft4
	result, err := Validate(map[string]interface{}{"name": "Ada"}, []byte(apiTestSchema), &draft4)
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}
