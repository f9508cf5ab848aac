package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrefersLoadedFile(t *testing.T) {
	t.Setenv("NEWSNOTES_TEST_KEY", "from-os")
	Env = map[string]string{"NEWSNOTES_TEST_KEY": "from-file"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, "from-file", GetEnv("NEWSNOTES_TEST_KEY", "def"))
}

func TestGetEnvFallsBackToOSAndDefault(t *testing.T) {
	Env = nil
	t.Setenv("NEWSNOTES_TEST_KEY", "from-os")

	assert.Equal(t, "from-os", GetEnv("NEWSNOTES_TEST_KEY", "def"))
	assert.Equal(t, "def", GetEnv("NEWSNOTES_TEST_MISSING", "def"))
}

func TestTypedGetters(t *testing.T) {
	Env = map[string]string{
		"PAGE":    "25",
		"BAD_INT": "abc",
		"FLAG":    "yes",
		"TTL":     "90s",
	}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, 25, GetEnvInt("PAGE", 10))
	assert.Equal(t, 10, GetEnvInt("BAD_INT", 10))
	assert.True(t, GetEnvBool("FLAG", false))
	assert.True(t, GetEnvBool("MISSING_FLAG", true))
	assert.Equal(t, 90*time.Second, GetEnvDuration("TTL", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("MISSING_TTL", time.Minute))
}
