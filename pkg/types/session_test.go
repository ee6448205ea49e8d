package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionExpired(t *testing.T) {
	now := time.Now()

	fresh := Session{LatestAccessTime: now.Add(-time.Hour).Unix()}
	assert.False(t, fresh.Expired(now))

	stale := Session{LatestAccessTime: now.Add(-SESSION_TIMEOUT - time.Minute).Unix()}
	assert.True(t, stale.Expired(now))
}

func TestSessionContextMerge(t *testing.T) {
	ctx := SessionContext{LastIntent: "fees", LastConfidence: 80, LastTopic: "fees"}

	ctx.Merge(SessionContext{LastIntent: "hostel", LastConfidence: 60})
	assert.Equal(t, "hostel", ctx.LastIntent)
	assert.Equal(t, 60, ctx.LastConfidence)
	// zero fields never clobber existing state
	assert.Equal(t, "fees", ctx.LastTopic)
}

func TestSessionContextScanValue(t *testing.T) {
	ctx := SessionContext{LastIntent: "admission", LastConfidence: 75, LastTopic: "admission"}

	raw, err := ctx.Value()
	require.NoError(t, err)

	var decoded SessionContext
	require.NoError(t, decoded.Scan([]byte(raw.(string))))
	assert.Equal(t, ctx, decoded)

	var fromNil SessionContext
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, SessionContext{}, fromNil)

	assert.Error(t, decoded.Scan(42))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Hindi", LanguageName("hi"))
	assert.Equal(t, "Hindi", LanguageName("raj"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "English", LanguageName("xx"))
}

func TestMessageSourcesScanValue(t *testing.T) {
	var empty MessageSources
	raw, err := empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	sources := MessageSources{{Title: "FAQ", Score: 0.8, OriginID: "1"}}
	raw, err = sources.Value()
	require.NoError(t, err)

	var decoded MessageSources
	require.NoError(t, decoded.Scan([]byte(raw.(string))))
	assert.Equal(t, sources, decoded)
}
