package jsonschema

import "net/url"

// evaluateID checks that a schema's resolved $id (or the legacy Draft-4 "id" alias)
// is an absolute URI without a fragment, per the core $id keyword rules. The raw ID
// string may be relative; schema.uri already carries it resolved against the parent's
// base URI from initializeSchemaCore, so that is what gets validated here.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-the-id-keyword
func evaluateID(schema *Schema) *EvaluationError {
	if schema.ID == "" {
		return nil
	}

	resolved := schema.uri
	if resolved == "" {
		resolved = schema.ID
	}

	uri, err := url.Parse(resolved)
	if err != nil {
		return NewEvaluationError("$id", "id_invalid", "Invalid `$id` URI: {error}", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if !uri.IsAbs() {
		return NewEvaluationError("$id", "id_not_absolute", "`$id` must be an absolute URI without a fragment.")
	}

	if uri.Fragment != "" {
		return NewEvaluationError("$id", "id_contains_fragment", "`$id` must not contain a fragment.")
	}

	return nil
}
