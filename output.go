package jsonschema

// OutputUnit is one node of the JSON Schema output-format tree (basic, detailed, or
// verbose). It mirrors the "flag"/"basic"/"detailed"/"verbose" shapes described by the
// JSON Schema output specification: every node carries its evaluation/schema/instance
// locations, and either an error message or nested results.
type OutputUnit struct {
	Valid            bool                  `json:"valid"`
	KeywordLocation  string                `json:"keywordLocation"`
	SchemaLocation   string                `json:"absoluteKeywordLocation,omitempty"`
	InstanceLocation string                `json:"instanceLocation"`
	Error            string                `json:"error,omitempty"`
	Errors           map[string]string     `json:"errors,omitempty"`
	Annotations      map[string]any        `json:"annotations,omitempty"`
	Details          []OutputUnit          `json:"details,omitempty"`
	nested           []*EvaluationResult
}

func (e *EvaluationResult) unit() OutputUnit {
	u := OutputUnit{
		Valid:            e.Valid,
		KeywordLocation:  e.EvaluationPath,
		SchemaLocation:   e.SchemaLocation,
		InstanceLocation: e.InstanceLocation,
	}
	if len(e.Errors) > 0 {
		u.Errors = e.convertErrors()
	}
	return u
}

// ToBasic renders the "basic" output format: a flat list of every failing node, each with
// its own location triple and message, without nesting.
func (e *EvaluationResult) ToBasic() *OutputUnit {
	root := e.unit()
	root.Details = make([]OutputUnit, 0)
	e.collectBasic(&root)
	return &root
}

func (e *EvaluationResult) collectBasic(root *OutputUnit) {
	for _, detail := range e.Details {
		if !detail.Valid {
			root.Details = append(root.Details, detail.unit())
		}
		detail.collectBasic(root)
	}
}

// ToDetailed renders the "detailed" output format: the full hierarchy of evaluation
// nodes, invalid branches only, preserving parent/child structure so a caller can trace
// exactly which subschema rejected which part of the instance.
func (e *EvaluationResult) ToDetailed() *OutputUnit {
	u := e.unit()
	for _, detail := range e.Details {
		if detail.Valid {
			continue
		}
		child := detail.ToDetailed()
		u.Details = append(u.Details, *child)
	}
	return &u
}

// ToVerbose renders the "verbose" output format: the complete hierarchy including valid
// branches, plus any annotations collected along the way (needed to audit why
// unevaluatedProperties/unevaluatedItems passed, for example).
func (e *EvaluationResult) ToVerbose() *OutputUnit {
	u := e.unit()
	if len(e.Annotations) > 0 {
		u.Annotations = e.Annotations
	}
	for _, detail := range e.Details {
		child := detail.ToVerbose()
		u.Details = append(u.Details, *child)
	}
	return &u
}
