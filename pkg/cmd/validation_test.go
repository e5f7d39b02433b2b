package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTupleDefaults(t *testing.T) {
	opts := NewOptions()
	opts.Values = []string{"1,2"}

	assert.Empty(t, opts.validateTuple())
}

func TestValidateTupleCollectsAllErrors(t *testing.T) {
	opts := NewOptions()
	opts.Conv = "complex"
	opts.Container = "deque"
	opts.NumItems = -1

	errs := opts.validateTuple()
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), `invalid conversion "complex"`)
	assert.Contains(t, errs[1].Error(), `invalid container "deque"`)
	assert.Contains(t, errs[2].Error(), "invalid number of items -1")
	assert.Contains(t, errs[3].Error(), "at least one VALUE")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvConv, ConvInt)
	t.Setenv(EnvContainer, ContainerSet)
	t.Setenv(EnvNumItems, "3")

	opts := NewOptions()
	opts.Values = []string{"1,2,3"}
	opts.loadFromEnv(noneChanged)
	require.Empty(t, opts.validateTuple())

	assert.Equal(t, ConvInt, opts.Conv)
	assert.Equal(t, ContainerSet, opts.Container)
	assert.Equal(t, 3, opts.NumItems)
}

func TestChangedFlagsTakePrecedenceOverEnv(t *testing.T) {
	t.Setenv(EnvConv, ConvInt)
	t.Setenv(EnvContainer, ContainerSet)
	t.Setenv(EnvNumItems, "3")

	// Explicit flags that repeat the defaults still win.
	opts := NewOptions()
	opts.loadFromEnv(func(string) bool { return true })

	assert.Equal(t, DefaultConv, opts.Conv)
	assert.Equal(t, DefaultContainer, opts.Container)
	assert.Equal(t, DefaultNumItems, opts.NumItems)

	opts = NewOptions()
	opts.loadFromEnv(func(name string) bool { return name == FlagConv })

	assert.Equal(t, DefaultConv, opts.Conv)
	assert.Equal(t, ContainerSet, opts.Container)
	assert.Equal(t, 3, opts.NumItems)
}

func TestLoadFromEnvIgnoresBadNumber(t *testing.T) {
	t.Setenv(EnvNumItems, "three")

	opts := NewOptions()
	opts.loadFromEnv(noneChanged)

	assert.Equal(t, DefaultNumItems, opts.NumItems)
}

func noneChanged(string) bool { return false }
