package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsUUID("not-a-uuid"))
	assert.True(t, IsUUID(42)) // non-string values are not this format's concern
}

func TestIsIDNHostname(t *testing.T) {
	assert.True(t, IsIDNHostname("example.com"))
	assert.True(t, IsIDNHostname("日本語.jp"))
	assert.False(t, IsIDNHostname(""))
	assert.False(t, IsIDNHostname("a..b"))
}

func TestIsIDNHostnameContextualRules(t *testing.T) {
	// MIDDLE DOT (U+00B7) only valid between two 'l's.
	assert.True(t, IsIDNHostname("el·lot.cat"))
	assert.False(t, IsIDNHostname("a·b.cat"))

	// GREEK LOWER NUMERAL SIGN (U+0375) must precede a Greek letter.
	assert.False(t, IsIDNHostname("a͵b.gr"))

	// HEBREW GERESH (U+05F3) must follow a Hebrew letter.
	assert.False(t, IsIDNHostname("a׳b.il"))

	// KATAKANA MIDDLE DOT (U+30FB) requires a Hiragana/Katakana/Han rune in the label.
	assert.False(t, IsIDNHostname("a・b.jp"))

	// ARABIC TATWEEL (U+0640) is never allowed.
	assert.False(t, IsIDNHostname("aـb.eg"))

	// Arabic-Indic and Extended Arabic-Indic digits cannot mix within one label.
	assert.False(t, IsIDNHostname("١۱.eg"))
}

func TestIsIDNEmail(t *testing.T) {
	assert.True(t, IsIDNEmail("user@example.com"))
	assert.True(t, IsIDNEmail("用户@例え.jp"))
	assert.False(t, IsIDNEmail("no-at-sign"))
	assert.False(t, IsIDNEmail("@missing-local.com"))
}

func TestFormatRegistryRoundTrip(t *testing.T) {
	defer func() {
		UnregisterFormat("test-custom-format")
	}()

	assert.False(t, HasFormat("test-custom-format"))

	RegisterFormat("test-custom-format", func(v interface{}) bool {
		s, ok := v.(string)
		return ok && s == "ok"
	})

	assert.True(t, HasFormat("test-custom-format"))
	fn, ok := GetFormat("test-custom-format")
	assert.True(t, ok)
	assert.True(t, fn("ok"))
	assert.False(t, fn("not-ok"))

	UnregisterFormat("test-custom-format")
	assert.False(t, HasFormat("test-custom-format"))
}

func TestListFormatsIncludesBuiltins(t *testing.T) {
	names := ListFormats()
	assert.Contains(t, names, "date-time")
	assert.Contains(t, names, "uuid")
	assert.Contains(t, names, "idn-hostname")
	assert.Contains(t, names, "idn-email")
}
