package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenSessionToken(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenSessionToken()
		assert.Regexp(t, pattern, token)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestGenUniqIDStr(t *testing.T) {
	SetupIDWorker(1)

	a := GenUniqIDStr()
	b := GenUniqIDStr()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "hello", TruncateRunes("hello", 10))
	assert.Equal(t, "hel", TruncateRunes("hello", 3))
	assert.Equal(t, "", TruncateRunes("hello", 0))
	// multibyte content is cut on rune boundaries
	assert.Equal(t, "नमस्", TruncateRunes("नमस्ते", 4))
}
