package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

type stubProvider struct {
	out string
	err error
}

func (s *stubProvider) Translate(ctx context.Context, text, sourceName, targetName string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func TestTranslateIdentity(t *testing.T) {
	tr := New(&stubProvider{out: "should never be used"})

	res := tr.ToWorking(context.Background(), "hello", "en")
	assert.Equal(t, OutcomeIdentity, res.Outcome)
	assert.Equal(t, "hello", res.Text)
}

func TestTranslateIdentityBySharedLanguageName(t *testing.T) {
	tr := New(&stubProvider{out: "should never be used"})

	// Rajasthani resolves to the Hindi language name
	res := tr.translate(context.Background(), "text", "raj", "hi")
	assert.Equal(t, OutcomeIdentity, res.Outcome)
	assert.Equal(t, "text", res.Text)
}

func TestTranslateWithoutProviderPassesThrough(t *testing.T) {
	tr := New(nil)

	res := tr.ToWorking(context.Background(), "नमस्ते", "hi")
	assert.Equal(t, OutcomePassThrough, res.Outcome)
	assert.Equal(t, "नमस्ते", res.Text)
	assert.NotEmpty(t, res.Reason)
}

func TestTranslateProviderFailurePassesThrough(t *testing.T) {
	tr := New(&stubProvider{err: errors.New("provider down")})

	res := tr.FromWorking(context.Background(), "hello", "hi")
	assert.Equal(t, OutcomePassThrough, res.Outcome)
	assert.Equal(t, "hello", res.Text)
	assert.Contains(t, res.Reason, "provider down")
}

func TestTranslateSuccess(t *testing.T) {
	tr := New(&stubProvider{out: "नमस्ते"})

	res := tr.FromWorking(context.Background(), "hello", "hi")
	assert.Equal(t, OutcomeTranslated, res.Outcome)
	assert.Equal(t, "नमस्ते", res.Text)
}

func TestProcessQueryPreferredLanguageWins(t *testing.T) {
	tr := New(nil)

	pq := tr.ProcessQuery(context.Background(), "what is the fee structure", "hi")
	assert.Equal(t, "en", pq.DetectedLanguage)
	assert.Equal(t, "hi", pq.ResponseLanguage)
	assert.Equal(t, "what is the fee structure", pq.WorkingText)
	assert.Equal(t, OutcomeIdentity, pq.Outcome)
}

func TestProcessQueryFallsBackToDetection(t *testing.T) {
	tr := New(&stubProvider{out: "when will the fees be due"})

	pq := tr.ProcessQuery(context.Background(), "फीस कब जमा करनी है", "")
	assert.Equal(t, "hi", pq.DetectedLanguage)
	assert.Equal(t, "hi", pq.ResponseLanguage)
	assert.Equal(t, OutcomeTranslated, pq.Outcome)
	assert.Equal(t, "when will the fees be due", pq.WorkingText)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "en", DetectLanguage("where is the library"))
	assert.Equal(t, "hi", DetectLanguage("पुस्तकालय कहाँ है"))
	assert.Equal(t, types.WORKING_LANGUAGE, DetectLanguage("12345"))
}
