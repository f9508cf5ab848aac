package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRedirect(t *testing.T) {
	assert.Equal(t, "/auth/login/?next=/news/1/", LoginRedirect(LoginRoute, "/news/1/"))
	assert.Equal(t, "/auth/login/?next=/notes/", LoginRedirect(LoginRoute, "/notes/"))
	assert.Equal(t, "/auth/login/?next=/edit/%D1%8F/", LoginRedirect(LoginRoute, "/edit/я/"))
	assert.Equal(t, "/auth/login/?next=/%3Fpage%3D2", LoginRedirect(LoginRoute, "/?page=2"))
	assert.Equal(t, LoginRoute, LoginRedirect(LoginRoute, ""))
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/notes/", SafeNext("/notes/", "/"))
	assert.Equal(t, "/", SafeNext("", "/"))
	assert.Equal(t, "/", SafeNext("//evil.example.com/", "/"))
	assert.Equal(t, "/", SafeNext("https://evil.example.com/", "/"))
	assert.Equal(t, "/", SafeNext("/\\evil.example.com", "/"))
}
