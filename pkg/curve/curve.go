// Package curve adapts the BabyJubJub twisted Edwards curve — the closest
// fetchable Go implementation of the Jubjub curve family used by RedJubjub —
// behind the Scalar (FE) / Point (GE) interface this protocol needs.
//
// The heavy lifting is delegated to github.com/iden3/go-iden3-crypto/babyjub;
// this package only adds the second independent generator, canonical
// compressed-to-BigInt encoding, and the arithmetic surface the two-party
// protocol packages call.
package curve

import (
	"math/big"

	babyjub "github.com/iden3/go-iden3-crypto/babyjub"
)

// Order is the prime order q of the curve's scalar field F_q, i.e. the order
// of the prime-order subgroup generated by G.
var Order = new(big.Int).Set(babyjub.SubOrder)

// fieldModulus is the modulus of the curve's base field, over which point
// coordinates (x, y) live. It is not the scalar field order above.
var fieldModulus, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10,
)

// curveA and curveD are BabyJubJub's published twisted Edwards parameters:
// a*x^2 + y^2 = 1 + d*x^2*y^2 (mod fieldModulus).
var (
	curveA = big.NewInt(168700)
	curveD = big.NewInt(168696)
)

// cofactor is the curve's cofactor; the prime-order subgroup is reached by
// multiplying an arbitrary curve point by this value.
var cofactor = big.NewInt(8)
