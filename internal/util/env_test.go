package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omnisig/go-txbuilder/internal/util"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ONLY_STRING", "value")
	assert.Equal(t, "value", util.GetEnv("TEST_ONLY_STRING", "default"))
	assert.Equal(t, "default", util.GetEnv("TEST_ONLY_STRING_UNSET", "default"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_ONLY_INT", "42")
	assert.Equal(t, 42, util.GetEnvAsInt("TEST_ONLY_INT", 1))
	assert.Equal(t, 1, util.GetEnvAsInt("TEST_ONLY_INT_UNSET", 1))

	t.Setenv("TEST_ONLY_INT_GARBAGE", "forty-two")
	assert.Equal(t, 1, util.GetEnvAsInt("TEST_ONLY_INT_GARBAGE", 1))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_ONLY_BOOL", "true")
	assert.True(t, util.GetEnvAsBool("TEST_ONLY_BOOL", false))
	assert.False(t, util.GetEnvAsBool("TEST_ONLY_BOOL_UNSET", false))
}
