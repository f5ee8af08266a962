package rappor

import (
	"encoding/binary"
	"fmt"
)

// DigestEncoder produces RAPPOR reports using slices of a single
// cryptographic digest for the bloom stage. One digest of the value is
// computed, a 64-bit hash is taken from its first 8 bytes, and each hash
// index consumes the next hashPartWidth bits of it, so the slices never
// overlap in source bits.
//
// The permanent noise layer is derived from mac(secret, value) through an
// internal [HMACRand], making it a deterministic function of the value
// without any PRNG state; the instantaneous layer draws fresh randomness
// from irr on every call. The randomization pipeline is otherwise
// identical to [Encoder].
type DigestEncoder struct {
	name          string
	cohort        int
	params        Params
	digest        DigestFunc
	det           DeterministicRand
	irr           IrrRand
	hashPartWidth int
	numBytes      int
	valid         bool
}

// NewDigestEncoder validates params against the digest and MAC functions
// and returns an encoder for the named metric. The digest must produce
// at least 8 bytes and the MAC at least NumBits bytes; NumHashes slices
// of hashPartWidth bits each must fit in the 64-bit hash value.
func NewDigestEncoder(name string, cohort int, params Params, digest DigestFunc, mac HMACFunc, secret []byte, irr IrrRand) (*DigestEncoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if digest == nil || irr == nil {
		return nil, ErrNilRand
	}
	hashPartWidth, _ := HashPartWidth(params.NumBits)
	if params.NumHashes*hashPartWidth > 64 {
		return nil, fmt.Errorf("%w: %d hashes of %d bits", ErrTooManyHashes, params.NumHashes, hashPartWidth)
	}
	if n := len(digest(nil)); n < 8 {
		return nil, fmt.Errorf("%w: %d digest bytes, need 8", ErrDigestTooShort, n)
	}
	det, err := NewHMACRand(params, mac, secret)
	if err != nil {
		return nil, err
	}
	return &DigestEncoder{
		name:          name,
		cohort:        cohort,
		params:        params,
		digest:        digest,
		det:           det,
		irr:           irr,
		hashPartWidth: hashPartWidth,
		numBytes:      params.NumBytes(),
		valid:         true,
	}, nil
}

// IsValid reports whether the encoder was constructed successfully.
func (e *DigestEncoder) IsValid() bool {
	return e != nil && e.valid
}

// Name returns the metric name.
func (e *DigestEncoder) Name() string { return e.name }

// Cohort returns the cohort identifier.
func (e *DigestEncoder) Cohort() int { return e.cohort }

// NumBytes returns the report size in bytes.
func (e *DigestEncoder) NumBytes() int { return e.numBytes }

// BloomBits returns the unnoised membership vector for value, built from
// consecutive hashPartWidth-bit slices of the value's digest. The result
// reveals the value and must never leave the client. On an invalid
// encoder the vector is zero.
func (e *DigestEncoder) BloomBits(value []byte) BitVector {
	var b BitVector
	if !e.IsValid() {
		return b
	}
	hash := binary.LittleEndian.Uint64(e.digest(value)[:8])
	for i := 0; i < e.params.NumHashes; i++ {
		b.Set(uint(hash % uint64(e.params.NumBits)))
		hash >>= uint(e.hashPartWidth)
	}
	return b
}

// Encode transforms value into a noised report of NumBytes little-endian
// bytes. The permanent noise layer is a deterministic function of the
// value and the MAC secret; the instantaneous layer is fresh per call.
func (e *DigestEncoder) Encode(value []byte) ([]byte, error) {
	if !e.IsValid() {
		return nil, ErrInvalidEncoder
	}
	irr := randomize(e.det, e.irr, value, e.BloomBits(value))
	return irr.AppendLE(make([]byte, 0, e.numBytes), e.numBytes), nil
}

// EncodeString is a convenience wrapper around Encode.
func (e *DigestEncoder) EncodeString(value string) ([]byte, error) {
	return e.Encode([]byte(value))
}
