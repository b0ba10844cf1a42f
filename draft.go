package jsonschema

import "strings"

// Draft identifies a JSON Schema specification version. A Schema is validated against
// exactly one draft for the lifetime of a single top-level Validate call.
type Draft int

const (
	// Draft4 is https://json-schema.org/specification-links#draft-4.
	Draft4 Draft = iota
	// Draft6 is https://json-schema.org/specification-links#draft-6.
	Draft6
	// Draft7 is https://json-schema.org/specification-links#draft-7.
	Draft7
	// Draft2019_09 is https://json-schema.org/specification-links#2019-09-formerly-known-as-draft-8.
	Draft2019_09
	// Draft2020_12 is https://json-schema.org/specification-links#2020-12.
	Draft2020_12
)

// DraftLatest is the draft used when a schema's $schema is absent or unrecognized.
const DraftLatest = Draft2020_12

func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft4"
	case Draft6:
		return "draft6"
	case Draft7:
		return "draft7"
	case Draft2019_09:
		return "2019-09"
	case Draft2020_12:
		return "2020-12"
	default:
		return "unknown"
	}
}

// IntegerRule describes how the "integer" type keyword matches numeric instances.
type IntegerRule int

const (
	// IntegerStrict accepts only values that were parsed as integers (draft 4): a JSON
	// literal of "1.0" is a number, never an integer.
	IntegerStrict IntegerRule = iota
	// IntegerValuedFloat additionally accepts floating-point values with a zero fractional
	// part (draft 6 and later): "1.0" is both a number and an integer.
	IntegerValuedFloat
)

// ExclusiveForm describes how exclusiveMinimum/exclusiveMaximum are interpreted.
type ExclusiveForm int

const (
	// ExclusiveBooleanModifier (draft 4): exclusiveMinimum/Maximum are booleans that
	// toggle whether the sibling minimum/maximum bound is exclusive.
	ExclusiveBooleanModifier ExclusiveForm = iota
	// ExclusiveNumericBound (draft 6+): exclusiveMinimum/Maximum carry their own numeric
	// bound, independent of minimum/maximum.
	ExclusiveNumericBound
)

// DraftProfile is the authoritative per-draft table: which vocabularies are active by
// default, how $ref interacts with sibling keywords, how "integer" and "exclusive*" are
// interpreted, the canonical metaschema URI, and draft-specific keyword names.
type DraftProfile struct {
	Draft Draft

	// MetaSchemaURI is the canonical $schema value for this draft.
	MetaSchemaURI string

	// RefOverridesSiblings is true for drafts 4, 6, 7: when $ref is present, every
	// sibling keyword is ignored and only the referenced schema applies.
	RefOverridesSiblings bool

	// IntegerRule governs "type": "integer" matching.
	IntegerRule IntegerRule

	// ExclusiveForm governs exclusiveMinimum/exclusiveMaximum.
	ExclusiveForm ExclusiveForm

	// HasVocabularies is true for 2019-09 and 2020-12, where $vocabulary in the
	// metaschema can toggle keyword sets on or off.
	HasVocabularies bool

	// DefaultVocabularies lists the vocabulary URIs active when no metaschema is
	// consulted (e.g. validating with a bare $schema string and no loaded metaschema body).
	DefaultVocabularies []string

	// LegacyDefinitions is true when "definitions" is the keyword name for schema reuse
	// (drafts 4, 6, 7); false when it is "$defs" (2019-09, 2020-12). Both are always
	// accepted on unmarshal for convenience; this only affects which name is canonical.
	LegacyDefinitions bool

	// DynamicRefKeyword and DynamicAnchorKeyword name the recursive-reference keywords:
	// "$recursiveRef"/"$recursiveAnchor" (2019-09) or "$dynamicRef"/"$dynamicAnchor" (2020-12+).
	// Drafts before 2019-09 have neither.
	DynamicRefKeyword    string
	DynamicAnchorKeyword string

	// SupportsUnevaluated is true for 2019-09+, where unevaluatedProperties/unevaluatedItems exist.
	SupportsUnevaluated bool

	// SupportsPrefixItems is true for 2020-12, where tuple validation moved from
	// "items" (array form) + "additionalItems" to "prefixItems" + "items".
	SupportsPrefixItems bool

	// IDKeyword is "id" for draft 4, "$id" for draft 6+.
	IDKeyword string
}

var draftProfiles = map[Draft]*DraftProfile{
	Draft4: {
		Draft:                Draft4,
		MetaSchemaURI:        "http://json-schema.org/draft-04/schema#",
		RefOverridesSiblings: true,
		IntegerRule:          IntegerStrict,
		ExclusiveForm:        ExclusiveBooleanModifier,
		HasVocabularies:      false,
		LegacyDefinitions:    true,
		IDKeyword:            "id",
	},
	Draft6: {
		Draft:                Draft6,
		MetaSchemaURI:        "http://json-schema.org/draft-06/schema#",
		RefOverridesSiblings: true,
		IntegerRule:          IntegerValuedFloat,
		ExclusiveForm:        ExclusiveNumericBound,
		HasVocabularies:      false,
		LegacyDefinitions:    true,
		IDKeyword:            "$id",
	},
	Draft7: {
		Draft:                Draft7,
		MetaSchemaURI:        "http://json-schema.org/draft-07/schema#",
		RefOverridesSiblings: true,
		IntegerRule:          IntegerValuedFloat,
		ExclusiveForm:        ExclusiveNumericBound,
		HasVocabularies:      false,
		LegacyDefinitions:    true,
		IDKeyword:            "$id",
	},
	Draft2019_09: {
		Draft:                Draft2019_09,
		MetaSchemaURI:        "https://json-schema.org/draft/2019-09/schema",
		RefOverridesSiblings: false,
		IntegerRule:          IntegerValuedFloat,
		ExclusiveForm:        ExclusiveNumericBound,
		HasVocabularies:      true,
		DefaultVocabularies: []string{
			VocabCore2019, VocabApplicator2019, VocabValidation2019,
			VocabMetaData2019, VocabFormat2019, VocabContent2019,
		},
		LegacyDefinitions:    false,
		DynamicRefKeyword:    "$recursiveRef",
		DynamicAnchorKeyword: "$recursiveAnchor",
		SupportsUnevaluated:  true,
		IDKeyword:            "$id",
	},
	Draft2020_12: {
		Draft:                Draft2020_12,
		MetaSchemaURI:        "https://json-schema.org/draft/2020-12/schema",
		RefOverridesSiblings: false,
		IntegerRule:          IntegerValuedFloat,
		ExclusiveForm:        ExclusiveNumericBound,
		HasVocabularies:      true,
		DefaultVocabularies: []string{
			VocabCore2020, VocabApplicator2020, VocabUnevaluated2020, VocabValidation2020,
			VocabMetaData2020, VocabFormatAnnotation2020, VocabContent2020,
		},
		LegacyDefinitions:    false,
		DynamicRefKeyword:    "$dynamicRef",
		DynamicAnchorKeyword: "$dynamicAnchor",
		SupportsUnevaluated:  true,
		SupportsPrefixItems:  true,
		IDKeyword:            "$id",
	},
}

// ProfileFor returns the DraftProfile for d, falling back to the latest draft's profile
// if d is not a recognized value.
func ProfileFor(d Draft) *DraftProfile {
	if p, ok := draftProfiles[d]; ok {
		return p
	}
	return draftProfiles[DraftLatest]
}

// metaschemaDraftBySuffix maps recognizable $schema URI suffixes to a Draft. Matching is
// suffix-based so http and https variants resolve the same way; a trailing "#" is
// ignored, but a trailing slash is not.
var metaschemaDraftBySuffix = []struct {
	suffix string
	draft  Draft
}{
	{"draft-04/schema#", Draft4},
	{"draft-04/schema", Draft4},
	{"draft-06/schema#", Draft6},
	{"draft-06/schema", Draft6},
	{"draft-07/schema#", Draft7},
	{"draft-07/schema", Draft7},
	{"2019-09/schema#", Draft2019_09},
	{"2019-09/schema", Draft2019_09},
	{"2020-12/schema#", Draft2020_12},
	{"2020-12/schema", Draft2020_12},
}

// DetectDraft maps a schema's "$schema" value to a Draft. An empty or unrecognized URI
// yields (DraftLatest, false); a recognized one yields (draft, true).
func DetectDraft(schemaURI string) (Draft, bool) {
	if schemaURI == "" {
		return DraftLatest, false
	}
	trimmed := strings.TrimSuffix(schemaURI, "#")
	for _, m := range metaschemaDraftBySuffix {
		s := strings.TrimSuffix(m.suffix, "#")
		if strings.HasSuffix(trimmed, s) {
			return m.draft, true
		}
	}
	return DraftLatest, false
}
