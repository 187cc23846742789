package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arina-sh/contact-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.RecaptchaConfig{
		Secret:         "test-secret",
		MinScore:       0.5,
		VerifyURL:      srv.URL,
		TimeoutSeconds: 2,
	})
}

func TestVerifyPassesOnSuccessAndScore(t *testing.T) {
	var gotSecret, gotResponse string
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		w.Write([]byte(`{"success": true, "score": 0.9}`))
	})

	assert.True(t, v.Verify(context.Background(), "tok"))
	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "tok", gotResponse)
}

func TestVerifyFailsOnLowScore(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "score": 0.3}`))
	})
	assert.False(t, v.Verify(context.Background(), "tok"))
}

func TestVerifyScoreAtThresholdPasses(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "score": 0.5}`))
	})
	assert.True(t, v.Verify(context.Background(), "tok"))
}

func TestVerifyFailsOnServiceRejection(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	})
	assert.False(t, v.Verify(context.Background(), "tok"))
}

func TestVerifyFailsOnMalformedResponse(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})
	assert.False(t, v.Verify(context.Background(), "tok"))
}

func TestVerifyFailsOnNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	v := New(config.RecaptchaConfig{
		Secret:         "test-secret",
		MinScore:       0.5,
		VerifyURL:      srv.URL,
		TimeoutSeconds: 1,
	})
	assert.False(t, v.Verify(context.Background(), "tok"))
}

func TestVerifyFailsOnMissingTokenWithoutNetworkCall(t *testing.T) {
	called := false
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"success": true, "score": 1.0}`))
	})

	assert.False(t, v.Verify(context.Background(), ""))
	assert.False(t, v.Verify(context.Background(), "   "))
	assert.False(t, called, "siteverify must not be called without a token")
}
