// Package secret holds sensitive scalar material (the key and nonce shares
// ask and r_i) behind a type distinct from curve.Scalar, so that an
// accidental `pub := share.ask` assignment is a compile error rather than a
// silent secret copy, and so that every secret has an explicit Zeroize call
// site (spec.md §5, §9).
package secret

import (
	"github.com/jubjub-mpc/two-party-schnorr/pkg/curve"
)

// Scalar wraps a single sensitive field element. The zero value holds no
// secret and is safe to zeroize.
type Scalar struct {
	bytes [curve.ScalarSize]byte
	live  bool
}

// NewScalar wraps a copy of a curve.Scalar's value as a secret; the caller's
// curve.Scalar is left unchanged.
func NewScalar(s curve.Scalar) *Scalar {
	out := &Scalar{live: true}
	copy(out.bytes[:], s.Bytes())
	return out
}

// Expose returns the underlying public scalar for use in a single
// computation. Callers must not retain the result past the computation that
// needs it; prefer calling Expose right before the arithmetic that consumes
// it rather than caching the return value.
func (s *Scalar) Expose() curve.Scalar {
	if !s.live {
		return curve.NewScalar()
	}
	v, err := curve.ScalarFromBytes(s.bytes[:])
	if err != nil {
		// bytes were produced by curve.Scalar.Bytes() and therefore always
		// canonical; a failure here means memory was already corrupted.
		panic("secret: corrupted scalar: " + err.Error())
	}
	return v
}

// Zeroize overwrites the secret's backing bytes. It must be called whenever
// the session holding this secret completes or aborts (spec.md §5, §7).
// Safe to call multiple times.
func (s *Scalar) Zeroize() {
	for i := range s.bytes {
		s.bytes[i] = 0
	}
	s.live = false
}
