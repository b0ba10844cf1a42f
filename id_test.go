package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateIDAcceptsAbsoluteURI(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"$id": "http://example.com/schema", "type": "object"}`))
	require.NoError(t, err)

	assert.Nil(t, evaluateID(schema))
}

func TestEvaluateIDRejectsFragment(t *testing.T) {
	schema := &Schema{ID: "http://example.com/schema#frag"}
	schema.uri = schema.ID

	err := evaluateID(schema)
	require.NotNil(t, err)
	assert.Equal(t, "id_contains_fragment", err.Code)
}

func TestEvaluateIDRejectsNonAbsoluteWithNoBase(t *testing.T) {
	schema := &Schema{ID: "relative-schema.json"}
	schema.uri = schema.ID

	err := evaluateID(schema)
	require.NotNil(t, err)
	assert.Equal(t, "id_not_absolute", err.Code)
}

func TestEvaluateIDNoOpWhenAbsent(t *testing.T) {
	schema := &Schema{}
	assert.Nil(t, evaluateID(schema))
}

func TestLegacyDraft4IDAliasPopulatesID(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"id": "http://example.com/legacy-schema",
		"type": "object"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/legacy-schema", schema.ID)
}
