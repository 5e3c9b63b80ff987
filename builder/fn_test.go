package builder_test

import (
	"math/rand"
	"testing"

	"github.com/PerifanosPrometheus/graspologic/builder"
	"github.com/stretchr/testify/require"
)

func TestIDFns(t *testing.T) {
	require.Equal(t, "42", builder.DefaultIDFn(42))
	require.Equal(t, "v3", builder.PrefixIDFn("v")(3))
	require.Equal(t, "a", builder.AlphanumericIDFn(10))
	require.Equal(t, "10", builder.AlphanumericIDFn(36))

	require.Panics(t, func() { builder.PrefixIDFn("") })
	require.Panics(t, func() { builder.AlphanumericIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(1, 4)(nil)) // nil rng fallback
	require.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(1))))

	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.UniformWeightFn(2, 1) })
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}
