package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func TestApply_RunsInOrder(t *testing.T) {
	cfg := &testConfig{}
	Apply(cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		NoError(func(c *testConfig) { c.name = "a" }),
		NoError(func(c *testConfig) { c.value = 2 }),
	)

	require.Equal(t, 2, cfg.value)
	require.Equal(t, "a", cfg.name)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{}
	require.NotPanics(t, func() { Apply(cfg) })
}
