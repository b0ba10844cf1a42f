package jsonschema

// Validate is the package's primary entry point: it compiles schemaJSON against the
// given (or detected) draft and evaluates instance against the result. If draft is nil,
// the draft is resolved from schemaJSON's own "$schema" field, falling back to
// DraftLatest when absent or unrecognized, matching Schema.Draft's own resolution order.
func Validate(instance interface{}, schemaJSON []byte, draft *Draft) (*EvaluationResult, error) {
	compiler := NewCompiler()
	if draft != nil {
		compiler.DefaultDraft = *draft
	}

	schema, err := compiler.Compile(schemaJSON)
	if err != nil {
		return nil, err
	}

	return schema.Validate(instance), nil
}

// IsValid is a convenience wrapper around Validate that collapses the result to a
// single boolean. A schema-level error (malformed schema, unresolvable $ref) counts as
// invalid rather than propagating.
func IsValid(instance interface{}, schemaJSON []byte, draft *Draft) bool {
	result, err := Validate(instance, schemaJSON, draft)
	if err != nil {
		return false
	}
	return result.IsValid()
}

// ValidateLazy behaves like Validate but prunes the returned result to at most one
// error, for callers that only need to know whether validation failed and why, not
// the complete list of failures.
func ValidateLazy(instance interface{}, schemaJSON []byte, draft *Draft) (*EvaluationResult, error) {
	result, err := Validate(instance, schemaJSON, draft)
	if err != nil {
		return nil, err
	}
	firstErrorOnly(result)
	return result, nil
}

// firstErrorOnly prunes a result tree to at most one error, depth-first: a node with
// errors of its own keeps only the error of its alphabetically first keyword and drops
// its details; otherwise the first detail, in order, whose subtree holds an error is
// kept. Returns whether an error was found (and kept) anywhere in this subtree.
func firstErrorOnly(result *EvaluationResult) bool {
	if result == nil {
		return false
	}

	if len(result.Errors) > 0 {
		first := ""
		for keyword := range result.Errors {
			if first == "" || keyword < first {
				first = keyword
			}
		}
		result.Errors = map[string]*EvaluationError{first: result.Errors[first]}
		result.Details = nil
		return true
	}

	for i, detail := range result.Details {
		if firstErrorOnly(detail) {
			result.Details = result.Details[:i+1]
			return true
		}
	}

	return false
}

// ValidateSchema validates schemaJSON as a schema document in its own right: it must
// compile cleanly under the given (or detected) draft, which enforces the structural
// rules a metaschema would assert — valid regex in pattern/patternProperties, correctly
// typed keywords (e.g. "required" must unmarshal as a string array), and only recognized
// $vocabulary URIs when "required": true — and no reference may remain unresolved after
// compilation (the first unresolved URI is reported as a "$ref" error). This module carries no bundled copy of the official metaschema
// documents, so "against its draft's metaschema" is enforced via compilation rather
// than a self-referential schema-validates-schema pass.
func ValidateSchema(schemaJSON []byte, draft *Draft) (*EvaluationResult, error) {
	compiler := NewCompiler()
	if draft != nil {
		compiler.DefaultDraft = *draft
	}

	schema, err := compiler.Compile(schemaJSON)
	if err != nil {
		result := &EvaluationResult{Valid: false}
		result.AddError(NewEvaluationError("$schema", "schema_invalid", "{error}", map[string]interface{}{
			"error": err.Error(),
		}))
		return result, nil
	}

	if uris := schema.GetUnresolvedReferenceURIs(); len(uris) > 0 {
		result := &EvaluationResult{Valid: false}
		result.AddError(NewEvaluationError("$ref", "unresolved_ref", "Reference {ref} cannot be resolved", map[string]interface{}{
			"ref": uris[0],
		}))
		return result, nil
	}

	return NewEvaluationResult(schema), nil
}
