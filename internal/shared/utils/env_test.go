package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SPACEAGE_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("SPACEAGE_TEST_VALUE", "fallback"))

	t.Setenv("SPACEAGE_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("SPACEAGE_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SPACEAGE_TEST_MISSING", "fallback"))
}

func TestGetEnvTyped(t *testing.T) {
	t.Setenv("SPACEAGE_TEST_BOOL", "true")
	t.Setenv("SPACEAGE_TEST_INT", "42")
	t.Setenv("SPACEAGE_TEST_FLOAT", "2.5")
	t.Setenv("SPACEAGE_TEST_BAD", "nope")

	assert.True(t, GetEnvBool("SPACEAGE_TEST_BOOL", false))
	assert.True(t, GetEnvBool("SPACEAGE_TEST_BAD", true))
	assert.Equal(t, 42, GetEnvInt("SPACEAGE_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("SPACEAGE_TEST_BAD", 1))
	assert.Equal(t, 2.5, GetEnvFloat("SPACEAGE_TEST_FLOAT", 1))
	assert.Equal(t, 1.0, GetEnvFloat("SPACEAGE_TEST_BAD", 1))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("SPACEAGE_TEST_LIST", "http://a.test, ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvList("SPACEAGE_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, GetEnvList("SPACEAGE_TEST_MISSING", []string{"x"}))
}
