package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecursiveRefResolvesToOutermostAnchor mirrors the classic 2019-09 "extensible tree"
// pattern: the root declares $recursiveAnchor so that a nested schema reusing the root
// via $recursiveRef picks up whatever the outermost caller's schema actually is, not just
// the literal root definition.
func TestRecursiveRefResolvesToOutermostAnchor(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2019-09/schema",
		"$recursiveAnchor": true,
		"type": "object",
		"properties": {
			"children": {
				"type": "array",
				"items": {
					"allOf": [{"$recursiveRef": "#"}]
				}
			}
		}
	}`))
	require.NoError(t, err)

	valid := map[string]interface{}{
		"children": []interface{}{
			map[string]interface{}{
				"children": []interface{}{},
			},
		},
	}
	result := schema.Validate(valid)
	assert.True(t, result.IsValid())

	invalid := map[string]interface{}{
		"children": []interface{}{"not-an-object"},
	}
	result = schema.Validate(invalid)
	assert.False(t, result.IsValid())
}

func TestLookupRecursiveAnchorReturnsOutermostFlaggedSchema(t *testing.T) {
	outer := &Schema{}
	trueVal := true
	outer.RecursiveAnchor = &trueVal

	inner := &Schema{}

	scope := NewDynamicScope()
	scope.Push(outer)
	scope.Push(inner)

	assert.Same(t, outer, scope.LookupRecursiveAnchor())
}

func TestLookupRecursiveAnchorNilWhenNoneDeclared(t *testing.T) {
	scope := NewDynamicScope()
	scope.Push(&Schema{})
	assert.Nil(t, scope.LookupRecursiveAnchor())
}
