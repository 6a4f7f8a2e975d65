package testutil

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetViperValueRestores(t *testing.T) {
	ResetViper(t)
	viper.Set("some.key", "original")

	t.Run("inner", func(t *testing.T) {
		SetViperValue(t, "some.key", "changed")
		assert.Equal(t, "changed", viper.GetString("some.key"))
	})

	assert.Equal(t, "original", viper.GetString("some.key"))
}

func TestTestEnvRoundTrip(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("nested/file.txt", "hello")
	assert.True(t, env.FileExists("nested/file.txt"))
	assert.Equal(t, "hello", env.ReadFileString("nested/file.txt"))
	assert.False(t, env.FileExists("missing.txt"))
}
