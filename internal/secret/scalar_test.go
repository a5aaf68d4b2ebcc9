package secret_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jubjub-mpc/two-party-schnorr/internal/secret"
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

func TestExposeReturnsWrappedValue(t *testing.T) {
	want, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)

	s := secret.NewScalar(want)
	assert.True(t, want.Equal(s.Expose()))
}

func TestZeroizeMakesExposeReturnZero(t *testing.T) {
	want, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	require.False(t, want.IsZero())

	s := secret.NewScalar(want)
	s.Zeroize()
	assert.True(t, s.Expose().IsZero())
}

func TestZeroizeIsIdempotent(t *testing.T) {
	want, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)

	s := secret.NewScalar(want)
	s.Zeroize()
	assert.NotPanics(t, func() { s.Zeroize() })
	assert.True(t, s.Expose().IsZero())
}
