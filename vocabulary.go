package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// VocabularyEntry pairs a vocabulary URI from $vocabulary with its required flag.
type VocabularyEntry struct {
	URI      string
	Required bool
}

// VocabularySet holds a metaschema's $vocabulary entries in their original JSON key
// order. A plain map[string]bool loses that order at decode time, which makes
// ActiveVocabularies' output depend on Go's randomized map iteration; keeping the
// entries as an ordered slice makes vocabulary resolution deterministic.
type VocabularySet []VocabularyEntry

// Lookup reports whether uri appears in the set and, if so, whether it is required.
func (vs VocabularySet) Lookup(uri string) (required bool, ok bool) {
	for _, e := range vs {
		if e.URI == uri {
			return e.Required, true
		}
	}
	return false, false
}

// UnmarshalJSON decodes a $vocabulary object while preserving source key order.
func (vs *VocabularySet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("$vocabulary: expected a JSON object")
	}
	var out VocabularySet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var required bool
		if err := dec.Decode(&required); err != nil {
			return err
		}
		out = append(out, VocabularyEntry{URI: key, Required: required})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return err
	}
	*vs = out
	return nil
}

// MarshalJSON re-encodes the set as a JSON object, preserving the stored order.
func (vs VocabularySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range vs {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(e.URI)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		if e.Required {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Vocabulary URIs for 2019-09.
const (
	VocabCore2019       = "https://json-schema.org/draft/2019-09/vocab/core"
	VocabApplicator2019 = "https://json-schema.org/draft/2019-09/vocab/applicator"
	VocabValidation2019 = "https://json-schema.org/draft/2019-09/vocab/validation"
	VocabMetaData2019   = "https://json-schema.org/draft/2019-09/vocab/meta-data"
	VocabFormat2019     = "https://json-schema.org/draft/2019-09/vocab/format"
	VocabContent2019    = "https://json-schema.org/draft/2019-09/vocab/content"
)

// Vocabulary URIs for 2020-12.
const (
	VocabCore2020             = "https://json-schema.org/draft/2020-12/vocab/core"
	VocabApplicator2020       = "https://json-schema.org/draft/2020-12/vocab/applicator"
	VocabUnevaluated2020      = "https://json-schema.org/draft/2020-12/vocab/unevaluated"
	VocabValidation2020       = "https://json-schema.org/draft/2020-12/vocab/validation"
	VocabMetaData2020         = "https://json-schema.org/draft/2020-12/vocab/meta-data"
	VocabFormatAnnotation2020 = "https://json-schema.org/draft/2020-12/vocab/format-annotation"
	VocabFormatAssertion2020  = "https://json-schema.org/draft/2020-12/vocab/format-assertion"
	VocabContent2020          = "https://json-schema.org/draft/2020-12/vocab/content"
)

// vocabKeywords maps each vocabulary URI to the keyword set it owns. ActiveVocabularies
// uses it to recognize vocabulary URIs and IsKeywordAllowed to look up keyword ownership;
// evaluation does not consult it, so every keyword is evaluated whichever vocabularies
// are active.
var vocabKeywords = map[string]map[string]bool{
	VocabCore2019: {
		"$id": true, "$schema": true, "$anchor": true, "$ref": true,
		"$recursiveRef": true, "$recursiveAnchor": true, "$defs": true, "$comment": true, "$vocabulary": true,
	},
	VocabApplicator2019: {
		"additionalItems": true, "unevaluatedItems": true, "unevaluatedProperties": true,
		"items": true, "contains": true, "additionalProperties": true, "properties": true,
		"patternProperties": true, "dependentSchemas": true, "propertyNames": true,
		"if": true, "then": true, "else": true, "allOf": true, "anyOf": true, "oneOf": true, "not": true,
	},
	VocabValidation2019: {
		"multipleOf": true, "maximum": true, "exclusiveMaximum": true, "minimum": true,
		"exclusiveMinimum": true, "maxLength": true, "minLength": true, "pattern": true,
		"maxItems": true, "minItems": true, "uniqueItems": true, "maxContains": true,
		"minContains": true, "maxProperties": true, "minProperties": true, "required": true,
		"dependentRequired": true, "const": true, "enum": true, "type": true,
	},
	VocabMetaData2019: {
		"title": true, "description": true, "default": true, "deprecated": true,
		"readOnly": true, "writeOnly": true, "examples": true,
	},
	VocabFormat2019:  {"format": true},
	VocabContent2019: {"contentEncoding": true, "contentMediaType": true, "contentSchema": true},

	VocabCore2020: {
		"$id": true, "$schema": true, "$anchor": true, "$ref": true,
		"$dynamicRef": true, "$dynamicAnchor": true, "$defs": true, "$comment": true, "$vocabulary": true,
	},
	VocabApplicator2020: {
		"prefixItems": true, "items": true, "contains": true, "additionalProperties": true,
		"properties": true, "patternProperties": true, "dependentSchemas": true,
		"propertyNames": true, "if": true, "then": true, "else": true,
		"allOf": true, "anyOf": true, "oneOf": true, "not": true,
	},
	VocabUnevaluated2020: {"unevaluatedItems": true, "unevaluatedProperties": true},
	VocabValidation2020: {
		"multipleOf": true, "maximum": true, "exclusiveMaximum": true, "minimum": true,
		"exclusiveMinimum": true, "maxLength": true, "minLength": true, "pattern": true,
		"maxItems": true, "minItems": true, "uniqueItems": true, "maxContains": true,
		"minContains": true, "maxProperties": true, "minProperties": true, "required": true,
		"dependentRequired": true, "const": true, "enum": true, "type": true,
	},
	VocabMetaData2020: {
		"title": true, "description": true, "default": true, "deprecated": true,
		"readOnly": true, "writeOnly": true, "examples": true,
	},
	VocabFormatAnnotation2020: {"format": true},
	VocabFormatAssertion2020:  {"format": true},
	VocabContent2020:          {"contentEncoding": true, "contentMediaType": true, "contentSchema": true},
}

// ActiveVocabularies resolves the set of vocabulary URIs in effect for a compiled schema:
// the metaschema's own $vocabulary entries when present, in their authored order (only
// URIs marked `true`, i.e. required, are honored — an unknown required vocabulary is a
// compile error), otherwise the draft's DefaultVocabularies.
func ActiveVocabularies(draft Draft, vocabulary VocabularySet) ([]string, error) {
	profile := ProfileFor(draft)
	if !profile.HasVocabularies || len(vocabulary) == 0 {
		return profile.DefaultVocabularies, nil
	}
	active := make([]string, 0, len(vocabulary))
	for _, entry := range vocabulary {
		if !entry.Required {
			continue
		}
		if _, known := vocabKeywords[entry.URI]; !known {
			return nil, &SchemaError{Keyword: "$vocabulary", Err: ErrUnsupportedVocabulary}
		}
		active = append(active, entry.URI)
	}
	return active, nil
}

// IsKeywordAllowed reports whether keyword is owned by one of the active vocabularies.
// Keywords outside every active vocabulary's table, including unknown extension keywords,
// yield false. Evaluation does not call this function, so unrecognized keywords are
// ignored, not rejected.
func IsKeywordAllowed(active []string, keyword string) bool {
	for _, uri := range active {
		if vocabKeywords[uri][keyword] {
			return true
		}
	}
	return false
}
