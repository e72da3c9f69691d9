package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "fr", NormalizeLanguage(""))
	assert.Equal(t, "fr", NormalizeLanguage("de"))
	assert.Equal(t, "en", NormalizeLanguage("en"))
	assert.Equal(t, "ar", NormalizeLanguage("AR"))
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range SupportedLanguages {
		assert.True(t, IsSupportedLanguage(lang))
	}
	assert.False(t, IsSupportedLanguage("de"))
	assert.False(t, IsSupportedLanguage(""))
}
