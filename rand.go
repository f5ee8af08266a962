package rappor

import (
	"fmt"

	"github.com/zeebo/mwc"
)

// DeterministicRand supplies the memoized noise for the permanent
// randomized response. Seeding with the same value must reproduce the
// same subsequent draws.
//
// An encode is the atomic sequence Seed, FBits, Uniform; sharing one
// DeterministicRand across concurrent encoders interleaves those
// sequences and breaks the memoization property. Give each encoder its
// own instance.
type DeterministicRand interface {
	// Seed re-initializes the internal state from the value.
	Seed(value []byte)

	// FBits returns a vector whose bit i is 1 independently with
	// probability ProbF.
	FBits() BitVector

	// Uniform returns a vector whose bit i is 1 independently with
	// probability 1/2.
	Uniform() BitVector
}

// IrrRand supplies the fresh noise for the instantaneous randomized
// response. Every call must draw new randomness.
type IrrRand interface {
	// PBits returns a vector whose bit i is 1 independently with
	// probability ProbP.
	PBits() BitVector

	// QBits returns a vector whose bit i is 1 independently with
	// probability ProbQ.
	QBits() BitVector
}

// NoiseRand is the legacy combined noise source carrying all three
// biased draws. Any NoiseRand can serve as an IrrRand.
type NoiseRand interface {
	FBits() BitVector
	IrrRand
}

// MWCRand is a randomness source backed by an explicitly owned
// multiply-with-carry PRNG. It implements DeterministicRand, IrrRand and
// NoiseRand; use separate instances for the PRR and IRR roles, since
// Seed makes every subsequent draw a deterministic function of the value.
//
// MWCRand is not safe for concurrent use.
type MWCRand struct {
	params Params
	rng    *mwc.T
}

var (
	_ DeterministicRand = (*MWCRand)(nil)
	_ NoiseRand         = (*MWCRand)(nil)
)

// NewMWCRand returns a source seeded from OS entropy.
func NewMWCRand(params Params) *MWCRand {
	return &MWCRand{params: params, rng: mwc.Rand()}
}

// NewMWCRandSeeded returns a source with an explicit 128-bit seed, for
// reproducible runs.
func NewMWCRandSeeded(params Params, x, c uint64) *MWCRand {
	return &MWCRand{params: params, rng: mwc.New(x, c)}
}

// Seed re-initializes the generator from a 128-bit hash of value, so the
// draws that follow are a deterministic function of the value.
func (r *MWCRand) Seed(value []byte) {
	x, c := seedFromValue(value)
	r.rng = mwc.New(x, c)
}

// FBits draws a vector whose bits are 1 with probability ProbF.
func (r *MWCRand) FBits() BitVector { return r.bits(r.params.ProbF) }

// PBits draws a vector whose bits are 1 with probability ProbP.
func (r *MWCRand) PBits() BitVector { return r.bits(r.params.ProbP) }

// QBits draws a vector whose bits are 1 with probability ProbQ.
func (r *MWCRand) QBits() BitVector { return r.bits(r.params.ProbQ) }

// Uniform draws a vector whose bits are 1 with probability 1/2.
func (r *MWCRand) Uniform() BitVector {
	var b BitVector
	b.v[0] = r.rng.Uint64()
	if r.params.NumBits > 64 {
		b.v[1] = r.rng.Uint64()
	}
	return b.truncate(r.params.NumBits)
}

// bits draws one biased bit per report position by comparing a 32-bit
// generator word against p scaled to 2^32.
func (r *MWCRand) bits(p float64) BitVector {
	var b BitVector
	if p <= 0 {
		return b
	}
	if p >= 1 {
		return allOnes(r.params.NumBits)
	}
	threshold := uint64(p * (1 << 32))
	for i := 0; i < r.params.NumBits; i++ {
		if uint64(r.rng.Uint32()) < threshold {
			b.Set(uint(i))
		}
	}
	return b
}

// HMACRand is a DeterministicRand that derives its draws from a keyed
// digest of the seeded value, the way the reference client computes its
// PRR masks: byte i of the digest contributes its low bit to Uniform and
// its remaining seven bits, compared against ProbF*128, to FBits.
//
// The MAC must produce at least NumBits bytes (one byte of entropy per
// report bit), which caps HMAC-SHA256 at 32-bit reports.
type HMACRand struct {
	params Params
	mac    HMACFunc
	key    []byte
	digest []byte
}

var _ DeterministicRand = (*HMACRand)(nil)

// NewHMACRand returns an HMAC-derived deterministic source. The MAC
// output length is probed once; a MAC shorter than NumBits bytes is
// rejected with ErrDigestTooShort.
func NewHMACRand(params Params, mac HMACFunc, key []byte) (*HMACRand, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if mac == nil {
		return nil, ErrNilRand
	}
	if n := len(mac(key, nil)); n < params.NumBits {
		return nil, fmt.Errorf("%w: %d bytes for %d report bits", ErrDigestTooShort, n, params.NumBits)
	}
	return &HMACRand{params: params, mac: mac, key: key}, nil
}

// Seed computes the keyed digest of value that the draws slice up.
func (r *HMACRand) Seed(value []byte) {
	r.digest = r.mac(r.key, value)
}

// FBits returns the noise-force mask: bit i is 1 iff the high seven bits
// of digest byte i fall below ProbF*128. Before Seed has been called the
// draw is the zero vector.
func (r *HMACRand) FBits() BitVector {
	var b BitVector
	if len(r.digest) < r.params.NumBits {
		return b
	}
	threshold := r.params.ProbF * 128
	for i := 0; i < r.params.NumBits; i++ {
		if float64(r.digest[i]>>1) < threshold {
			b.Set(uint(i))
		}
	}
	return b
}

// Uniform returns the coin-flip mask: bit i is the low bit of digest
// byte i. Before Seed has been called the draw is the zero vector.
func (r *HMACRand) Uniform() BitVector {
	var b BitVector
	if len(r.digest) < r.params.NumBits {
		return b
	}
	for i := 0; i < r.params.NumBits; i++ {
		if r.digest[i]&1 != 0 {
			b.Set(uint(i))
		}
	}
	return b
}
