// Package hashing implements the single personalized-hash primitive this
// protocol is allowed to use (spec.md §6, §9: "forbid raw Blake2b use
// elsewhere to preserve domain separation"). Every commitment, challenge,
// and nonce derivation in protocols/twoparty and internal/proofs goes
// through HashToScalar or HashToBigInt (or their Reversed variants) in this
// package. The only other hash in the module is the SHA-256 that pkg/curve
// uses to derive the second generator H.
package hashing

import (
	"math/big"

	"github.com/dchest/blake2b"
)

// Personalization is the 16-byte Blake2b personalization string spec.md §6
// fixes for every challenge and derivation in this system.
const Personalization = "Zcash_RedJubjubH"

// digest512 returns the personalized Blake2b-512 digest of the ordered
// concatenation of each part's big-endian byte encoding.
func digest512(parts []*big.Int) []byte {
	cfg := &blake2b.Config{Size: 64, Person: []byte(Personalization)}
	h, err := blake2b.New(cfg)
	if err != nil {
		// Only possible if Size/Person are malformed, which they are not:
		// both are fixed constants above.
		panic("hashing: blake2b config: " + err.Error())
	}
	for _, p := range parts {
		h.Write(p.Bytes())
	}
	return h.Sum(nil)
}

// HashToBigInt hashes an ordered list of big integers into a single 512-bit
// digest, returned as a big integer. Used by hash commitments, which commit
// to the raw digest rather than a field-reduced scalar (see DESIGN.md).
func HashToBigInt(parts ...*big.Int) *big.Int {
	return new(big.Int).SetBytes(digest512(parts))
}

// HashToBigIntReversed is HashToBigInt, but with the digest's byte order
// reversed before conversion — the compatibility-critical encoding spec.md
// §6 requires for the signing challenge hash.
func HashToBigIntReversed(parts ...*big.Int) *big.Int {
	d := digest512(parts)
	reversed := make([]byte, len(d))
	for i, b := range d {
		reversed[len(d)-1-i] = b
	}
	return new(big.Int).SetBytes(reversed)
}
