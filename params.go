package rappor

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedWidth is returned when NumBits is not one of the
	// supported report widths.
	ErrUnsupportedWidth = errors.New("rappor: unsupported bit width")

	// ErrInvalidHashCount is returned when NumHashes is less than 1.
	ErrInvalidHashCount = errors.New("rappor: invalid hash count")

	// ErrInvalidProbability is returned when a noise probability lies
	// outside [0, 1].
	ErrInvalidProbability = errors.New("rappor: probability out of range")

	// ErrInvalidEncoder is returned by Encode on an encoder that was not
	// constructed through a New* function or whose parameters were
	// rejected.
	ErrInvalidEncoder = errors.New("rappor: invalid encoder")

	// ErrNilRand is returned when an encoder is constructed without a
	// randomness source.
	ErrNilRand = errors.New("rappor: nil randomness source")

	// ErrTooManyHashes is returned when the digest-based encoder cannot
	// cut NumHashes slices out of a 64-bit hash value.
	ErrTooManyHashes = errors.New("rappor: too many hashes for digest width")

	// ErrDigestTooShort is returned when a digest or MAC function does
	// not produce enough bytes for the configured bit width.
	ErrDigestTooShort = errors.New("rappor: digest too short")
)

// hashPartWidths maps a supported report width to the number of bits one
// hash slice contributes, log2(width). Every supported width is a whole
// number of bytes and fits in a BitVector.
var hashPartWidths = map[int]int{
	8:   3,
	16:  4,
	32:  5,
	64:  6,
	128: 7,
}

// HashPartWidth returns the number of bits a single hash slice must
// contribute for the given report width. ok is false if the width is
// unsupported.
func HashPartWidth(numBits int) (width int, ok bool) {
	width, ok = hashPartWidths[numBits]
	return width, ok
}

// Params describes one RAPPOR encoding configuration. A Params value is
// shared read-only by every encoder and randomness source built from it.
type Params struct {
	// NumBits is the width of the report in bits: 8, 16, 32, 64 or 128.
	NumBits int

	// NumHashes is the number of hash slices combined into the bloom
	// vector. Must be at least 1.
	NumHashes int

	// ProbF is the permanent (memoized) noise probability.
	ProbF float64

	// ProbP is the probability of reporting 1 for a PRR bit of 0.
	ProbP float64

	// ProbQ is the probability of reporting 1 for a PRR bit of 1.
	ProbQ float64
}

// NumBytes returns the report size in bytes.
func (p Params) NumBytes() int {
	return p.NumBits / 8
}

// Validate reports whether the parameter set can construct a valid
// encoder. Encoders call it at construction time, never at encode time.
func (p Params) Validate() error {
	if _, ok := HashPartWidth(p.NumBits); !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedWidth, p.NumBits)
	}
	if p.NumHashes < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidHashCount, p.NumHashes)
	}
	for _, prob := range []float64{p.ProbF, p.ProbP, p.ProbQ} {
		if prob < 0 || prob > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidProbability, prob)
		}
	}
	return nil
}
