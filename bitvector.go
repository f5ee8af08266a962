package rappor

import (
	"fmt"
	"math/bits"
)

// BitVector is a fixed-width set of bit positions, wide enough for the
// largest supported report (128 bits). Bit 0 is the least significant
// bit of the first word. It is a small value type; the bitwise operations
// return new vectors.
type BitVector struct {
	v [2]uint64
}

// Set sets bit n. n must be below 128.
func (b *BitVector) Set(n uint) {
	b.v[n/64] |= 1 << (n % 64)
}

// Has reports whether bit n is set.
func (b BitVector) Has(n uint) bool {
	return b.v[n/64]&(1<<(n%64)) != 0
}

// And returns b & o.
func (b BitVector) And(o BitVector) BitVector {
	return BitVector{v: [2]uint64{b.v[0] & o.v[0], b.v[1] & o.v[1]}}
}

// Or returns b | o.
func (b BitVector) Or(o BitVector) BitVector {
	return BitVector{v: [2]uint64{b.v[0] | o.v[0], b.v[1] | o.v[1]}}
}

// AndNot returns b &^ o, clearing every bit of b that is set in o.
func (b BitVector) AndNot(o BitVector) BitVector {
	return BitVector{v: [2]uint64{b.v[0] &^ o.v[0], b.v[1] &^ o.v[1]}}
}

// OnesCount returns the number of set bits.
func (b BitVector) OnesCount() int {
	return bits.OnesCount64(b.v[0]) + bits.OnesCount64(b.v[1])
}

// String renders the vector as 128 binary digits, most significant first.
func (b BitVector) String() string {
	return fmt.Sprintf("%064b%064b", b.v[1], b.v[0])
}

// AppendLE appends the low numBytes bytes of the vector to dst in
// little-endian order: bit positions [8k, 8k+8) become output byte k.
func (b BitVector) AppendLE(dst []byte, numBytes int) []byte {
	for i := 0; i < numBytes; i++ {
		dst = append(dst, byte(b.v[i/8]>>(8*(i%8))))
	}
	return dst
}

// truncate clears every bit at position numBits or above.
func (b BitVector) truncate(numBits int) BitVector {
	switch {
	case numBits >= 128:
		return b
	case numBits >= 64:
		b.v[1] &= 1<<(numBits-64) - 1
	default:
		b.v[0] &= 1<<numBits - 1
		b.v[1] = 0
	}
	return b
}

// allOnes returns a vector with the low numBits bits set.
func allOnes(numBits int) BitVector {
	return BitVector{v: [2]uint64{^uint64(0), ^uint64(0)}}.truncate(numBits)
}
