package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// Scalar is a field element (FE) of F_q, the curve's prime-order scalar
// field. The zero value is the additive identity.
type Scalar struct {
	v *big.Int
}

// ScalarSize is the fixed width, in bytes, of a canonically encoded scalar.
const ScalarSize = 32

// NewScalar returns the zero scalar.
func NewScalar() Scalar {
	return Scalar{v: new(big.Int)}
}

// ScalarFromBigInt reduces an arbitrary big integer into F_q.
func ScalarFromBigInt(x *big.Int) Scalar {
	return Scalar{v: new(big.Int).Mod(x, Order)}
}

// ScalarFromUint64 reduces a small integer into F_q; mostly useful in tests
// and for literal test-vector messages (e.g. the m = 10 vector of §8).
func ScalarFromUint64(x uint64) Scalar {
	return ScalarFromBigInt(new(big.Int).SetUint64(x))
}

// RandomScalar samples a uniformly random element of F_q from r.
func RandomScalar(r io.Reader) (Scalar, error) {
	v, err := rand.Int(r, Order)
	if err != nil {
		return Scalar{}, fmt.Errorf("curve: sample scalar: %w", err)
	}
	return Scalar{v: v}, nil
}

// BigInt returns the canonical (reduced, non-negative) big-integer value of s.
func (s Scalar) BigInt() *big.Int {
	if s.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.v)
}

// Add returns s + other mod q.
func (s Scalar) Add(other Scalar) Scalar {
	return ScalarFromBigInt(new(big.Int).Add(s.BigInt(), other.BigInt()))
}

// Mul returns s * other mod q.
func (s Scalar) Mul(other Scalar) Scalar {
	return ScalarFromBigInt(new(big.Int).Mul(s.BigInt(), other.BigInt()))
}

// DivFloor returns floor(s / d) as a new scalar, computed over the integers
// before reduction — this is the range-reduction step Party 1's DKG share
// uses (§4.6), not modular division.
func (s Scalar) DivFloor(d int64) Scalar {
	q := new(big.Int).Div(s.BigInt(), big.NewInt(d))
	return ScalarFromBigInt(q)
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.BigInt().Sign() == 0
}

// Equal reports whether s and other represent the same field element.
func (s Scalar) Equal(other Scalar) bool {
	return s.BigInt().Cmp(other.BigInt()) == 0
}

// LessThan reports whether s, viewed as an integer in [0, q), is strictly
// less than bound. Used to check the range invariant of §3 Invariant 4.
func (s Scalar) LessThan(bound *big.Int) bool {
	return s.BigInt().Cmp(bound) < 0
}

// Bytes encodes s as ScalarSize big-endian bytes.
func (s Scalar) Bytes() []byte {
	out := make([]byte, ScalarSize)
	s.BigInt().FillBytes(out)
	return out
}

// ScalarFromBytes decodes a canonical big-endian scalar encoding, rejecting
// any value that does not represent a canonically reduced element of F_q
// (BadEncoding, per spec §7).
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return Scalar{}, fmt.Errorf("curve: scalar must be %d bytes, got %d", ScalarSize, len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(Order) >= 0 {
		return Scalar{}, fmt.Errorf("curve: scalar out of range")
	}
	return Scalar{v: v}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Scalar) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(b []byte) error {
	v, err := ScalarFromBytes(b)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalCBOR serializes the scalar as its canonical byte encoding wrapped
// in a CBOR byte string.
func (s Scalar) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.Bytes())
}

// UnmarshalCBOR deserializes a scalar from its canonical byte encoding.
func (s *Scalar) UnmarshalCBOR(buf []byte) error {
	var b []byte
	if err := cbor.Unmarshal(buf, &b); err != nil {
		return err
	}
	v, err := ScalarFromBytes(b)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Zeroize overwrites s's backing representation with zero. internal/proofs
// uses it to clear the Pedersen prover's one-time nonce after use;
// long-lived secrets (ask, r_i) are held in internal/secret.Scalar, which
// clears its own byte array instead.
func (s *Scalar) Zeroize() {
	if s.v != nil {
		s.v.SetInt64(0)
	}
}
