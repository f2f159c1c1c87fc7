package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateLanguage(t *testing.T) {
	assert.Equal(t, "en", negotiateLanguage(""))
	assert.Equal(t, "en", negotiateLanguage("en"))
	assert.Equal(t, "en", negotiateLanguage("en-US,en;q=0.9,sv;q=0.8"))
	assert.Equal(t, "en", negotiateLanguage("sv;q=0.9, en;q=0.8"))
	// No locale loaded for the requested language falls back to English.
	assert.Equal(t, "en", negotiateLanguage("sv-SE"))
}
