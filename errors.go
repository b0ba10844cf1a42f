package jsonschema

import (
	"errors"
	"fmt"
)

// === Loader Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from the specified URL.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching from the URL.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// === Serialization Related Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrXMLUnmarshal is returned when there is an error unmarshalling XML.
	ErrXMLUnmarshal = errors.New("xml unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
)

// === Schema Compilation and Parsing Related Errors ===
var (
	// ErrSchemaCompilation is returned when a schema fails to compile.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrReferenceResolution is returned when a local reference cannot be resolved.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrUnresolvableReference is returned when a $ref/$dynamicRef/$recursiveRef names an unknown
	// scheme or URI that no registered schema or loader can produce. Distinct from
	// ErrInvalidJSONPointer: this is "we don't know where to look", not "we looked and the path is wrong".
	ErrUnresolvableReference = errors.New("unresolvable reference")

	// ErrInvalidJSONPointer is returned when a reference's fragment is a syntactically valid JSON
	// Pointer but does not address an existing subschema (wrong key, out-of-range index, or a
	// pointer segment that terminates on a non-schema value such as an enum member).
	ErrInvalidJSONPointer = errors.New("invalid json pointer")

	// ErrJSONPointerSegmentDecode is returned when a pointer segment cannot be percent-decoded.
	ErrJSONPointerSegmentDecode = errors.New("json pointer segment decode failed")

	// ErrJSONPointerSegmentNotFound is returned when a segment is not found in the schema context.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found")

	// ErrInvalidSchemaType is returned when the JSON schema "type" keyword is malformed.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrSchemaIsNil is returned when a schema is nil where one was required.
	ErrSchemaIsNil = errors.New("schema is nil")

	// ErrUnsupportedVocabulary is returned when a metaschema's $vocabulary names an unknown
	// vocabulary URI with a required (true) value that this implementation does not understand.
	ErrUnsupportedVocabulary = errors.New("unsupported vocabulary")

	// ErrUnknownDraft is returned when a $schema URI cannot be mapped to a supported draft.
	ErrUnknownDraft = errors.New("unknown or unsupported draft")

	// ErrRegexValidation is the umbrella error joined with one or more *RegexPatternError values
	// when a schema's "pattern"/"patternProperties" fail to compile as RE2 syntax.
	ErrRegexValidation = errors.New("schema regex validation failed")

	// ErrInvalidEnum is returned when "enum" is present but is not a JSON array.
	ErrInvalidEnum = errors.New("enum must be an array")
)

// === Numeric Conversion Related Errors ===
var (
	// ErrRatConversion is returned when a JSON value cannot be converted to a big.Rat.
	ErrRatConversion = errors.New("rat conversion failed")

	// ErrUnsupportedRatType is returned when the Go type is unsupported for conversion to *big.Rat.
	ErrUnsupportedRatType = errors.New("unsupported rat type")
)

// === Format Related Errors ===
var (
	// ErrNilConstValue is returned when trying to unmarshal into a nil ConstValue.
	ErrNilConstValue = errors.New("cannot unmarshal into nil ConstValue")

	// ErrIPv6AddressFormat is returned when an IPv6 literal is not properly bracketed/formatted.
	ErrIPv6AddressFormat = errors.New("ipv6 address format error")

	// ErrInvalidIPv6 is returned when an IPv6 address fails to parse.
	ErrInvalidIPv6 = errors.New("invalid ipv6 address")
)

// RegexPatternError reports a schema-authoring mistake: a "pattern" or
// "patternProperties" key that does not compile as a regular expression.
type RegexPatternError struct {
	Keyword  string // the keyword that carried the pattern ("pattern" or "patternProperties")
	Location string // JSON Pointer (with leading "#") to the offending keyword
	Pattern  string // the offending pattern text
	Err      error  // the underlying regexp.Compile error
}

func (e *RegexPatternError) Error() string {
	return fmt.Sprintf("%s at %s: invalid pattern %q: %v", e.Keyword, e.Location, e.Pattern, e.Err)
}

func (e *RegexPatternError) Unwrap() error {
	return e.Err
}

// SchemaError wraps a structural problem in a schema document itself (as opposed to a
// ValidationError, which reports an instance failing to satisfy an otherwise-valid schema).
type SchemaError struct {
	Keyword  string // keyword responsible, e.g. "$ref", "$schema", "pattern"
	Location string // JSON Pointer into the schema document
	Err      error
}

func (e *SchemaError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("schema error at %s (%s): %v", e.Location, e.Keyword, e.Err)
	}
	return fmt.Sprintf("schema error (%s): %v", e.Keyword, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
