package jsonschema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDraft4BooleanExclusiveMinimum exercises the legacy Draft-4 form, where
// exclusiveMinimum is a boolean modifier on the sibling "minimum" bound rather than
// carrying its own numeric bound.
func TestDraft4BooleanExclusiveMinimum(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"minimum": 0,
		"exclusiveMinimum": true
	}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate(0).IsValid())
	assert.True(t, schema.Validate(0.001).IsValid())
}

func TestDraft4BooleanExclusiveMinimumFalseBehavesInclusive(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"minimum": 0,
		"exclusiveMinimum": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(0).IsValid())
}

func TestDraft4BooleanExclusiveMaximum(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"maximum": 10,
		"exclusiveMaximum": true
	}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate(10).IsValid())
	assert.True(t, schema.Validate(9.999).IsValid())
}

// TestDraft6NumericExclusiveMinimumStillWorks confirms the newer numeric form (its own
// bound, no sibling "minimum" needed) is unaffected by the Draft-4 boolean-peeking logic.
func TestDraft6NumericExclusiveMinimumStillWorks(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-06/schema#",
		"exclusiveMinimum": 0
	}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate(0).IsValid())
	assert.True(t, schema.Validate(0.001).IsValid())
	assert.Nil(t, schema.ExclusiveMinimumBool)
}

// TestDraft4TypeIntegerRejectsZeroFractionFloat confirms draft 4's stricter "integer"
// rule: unlike draft 6+, a float with a zero fractional part is still "number", never
// "integer".
func TestDraft4TypeIntegerRejectsZeroFractionFloat(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"type": "integer"
	}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate(1.0).IsValid())
	assert.True(t, schema.Validate(1).IsValid())
}

// TestDraft6TypeIntegerAcceptsZeroFractionFloat confirms the permissive draft 6+ rule:
// a float with a zero fractional part does match "integer".
func TestDraft6TypeIntegerAcceptsZeroFractionFloat(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-06/schema#",
		"type": "integer"
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(1.0).IsValid())
	assert.False(t, schema.Validate(1.5).IsValid())
}

// TestTypeNumberRejectsNonFiniteWithoutPanicking guards against the ErrNaN panic that
// big.Float.SetFloat64 raises on NaN/±Inf: "number"/"integer" must simply report the
// instance invalid.
func TestTypeNumberRejectsNonFiniteWithoutPanicking(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type": "number"}`))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.False(t, schema.Validate(math.NaN()).IsValid())
		assert.False(t, schema.Validate(math.Inf(1)).IsValid())
		assert.False(t, schema.Validate(math.Inf(-1)).IsValid())
	})
}
