package hcaptcha

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedVerifier(t *testing.T) *Verifier {
	t.Helper()
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return NewVerifier("secret", client)
}

func TestVerifySuccess(t *testing.T) {
	v := newMockedVerifier(t)
	httpmock.RegisterResponder("POST", VerifyURL, func(req *http.Request) (*http.Response, error) {
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "secret", req.PostForm.Get("secret"))
		assert.Equal(t, "token", req.PostForm.Get("response"))
		return httpmock.NewStringResponse(200, `{"success": true, "hostname": "localhost"}`), nil
	})

	ok, err := v.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestVerifyFailure(t *testing.T) {
	v := newMockedVerifier(t)
	httpmock.RegisterResponder("POST", VerifyURL,
		httpmock.NewStringResponder(200, `{"success": false, "error-codes": ["invalid-input-response"]}`))

	ok, err := v.Verify(context.Background(), "token")
	assert.False(t, ok)
	assert.EqualError(t, err, "hCaptcha validation failed: invalid-input-response")
}

func TestVerifyEmptyToken(t *testing.T) {
	v := newMockedVerifier(t)

	ok, err := v.Verify(context.Background(), "")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestNilVerifierAcceptsEverything(t *testing.T) {
	v := NewVerifier("", nil)
	assert.False(t, v.Enabled())

	ok, err := v.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, ok)
}
