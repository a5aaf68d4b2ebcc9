package curve

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	babyjub "github.com/iden3/go-iden3-crypto/babyjub"
)

// Point is a group element (GE) of the curve's prime-order subgroup.
type Point struct {
	inner *babyjub.Point
}

// Identity returns the identity element of the group.
func Identity() Point {
	p := babyjub.NewPoint()
	return Point{inner: p}
}

// Generator returns G, the distinguished base point named in §3.
func Generator() Point {
	return Point{inner: babyjub.B8}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	sum := p.inner.Projective().Add(p.inner.Projective(), other.inner.Projective()).Affine()
	return Point{inner: sum}
}

// ScalarMult returns s*p.
func (p Point) ScalarMult(s Scalar) Point {
	return Point{inner: new(babyjub.Point).Mul(s.BigInt(), p.inner)}
}

// ScalarBaseMult returns s*G, the common case of deriving a public share
// from a secret scalar.
func ScalarBaseMult(s Scalar) Point {
	return Generator().ScalarMult(s)
}

// Equal reports whether p and other are the same curve point.
func (p Point) Equal(other Point) bool {
	if p.inner == nil || other.inner == nil {
		return p.inner == other.inner
	}
	return p.inner.X.Cmp(other.inner.X) == 0 && p.inner.Y.Cmp(other.inner.Y) == 0
}

// IsIdentity reports whether p is the group identity (0, 1) in affine
// twisted-Edwards coordinates.
func (p Point) IsIdentity() bool {
	if p.inner == nil {
		return true
	}
	return p.inner.X.Sign() == 0 && p.inner.Y.Cmp(big.NewInt(1)) == 0
}

// CompressedBigInt returns the point's compressed encoding interpreted as a
// big integer — the "compressed encoding to a big integer" of spec §3, the
// common input alphabet fed to HashToScalar and to hash commitments.
func (p Point) CompressedBigInt() *big.Int {
	b := p.inner.Compress()
	return new(big.Int).SetBytes(b[:])
}

// Bytes returns the point's 32-byte compressed encoding, little-endian per
// the underlying curve library's convention.
func (p Point) Bytes() []byte {
	b := p.inner.Compress()
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}

// ReversedBytes returns Bytes() with byte order reversed — the
// compatibility-critical encoding §6 requires for the signing challenge
// hash.
func (p Point) ReversedBytes() []byte {
	b := p.Bytes()
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// PointFromBytes decodes a canonical compressed point encoding, rejecting
// anything that does not decompress to a valid curve point (BadEncoding,
// per spec §7) or that does not lie in the prime-order subgroup.
func PointFromBytes(b []byte) (Point, error) {
	if len(b) != 32 {
		return Point{}, fmt.Errorf("curve: point must be 32 bytes, got %d", len(b))
	}
	var arr [32]byte
	copy(arr[:], b)
	pt, err := babyjub.NewPoint().Decompress(arr)
	if err != nil {
		return Point{}, fmt.Errorf("curve: decompress point: %w", err)
	}
	if !pt.InCurve() {
		return Point{}, fmt.Errorf("curve: decoded point is not on curve")
	}
	if !(Point{inner: new(babyjub.Point).Mul(Order, pt)}).IsIdentity() {
		return Point{}, fmt.Errorf("curve: decoded point is not in the prime-order subgroup")
	}
	return Point{inner: pt}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Point) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Point) UnmarshalBinary(b []byte) error {
	pt, err := PointFromBytes(b)
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// MarshalCBOR serializes the point as its compressed byte encoding wrapped
// in a CBOR byte string.
func (p Point) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.Bytes())
}

// UnmarshalCBOR deserializes a point from its compressed byte encoding.
func (p *Point) UnmarshalCBOR(buf []byte) error {
	var b []byte
	if err := cbor.Unmarshal(buf, &b); err != nil {
		return err
	}
	pt, err := PointFromBytes(b)
	if err != nil {
		return err
	}
	*p = pt
	return nil
}
