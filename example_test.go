package rappor_test

import (
	"bytes"
	"fmt"

	"github.com/henrywoo/rappor"
)

// This example encodes a value with the direct-hash encoder using the
// reference deployment parameters.
func Example() {
	params := rappor.Params{
		NumBits:   16,
		NumHashes: 2,
		ProbF:     0.5,
		ProbP:     0.5,
		ProbQ:     0.75,
	}

	// Each encoder owns its randomness sources; do not share them across
	// concurrent encoders.
	enc, err := rappor.NewEncoder("home-page", 42, params,
		rappor.NewMWCRand(params), rappor.NewMWCRand(params))
	if err != nil {
		panic(err)
	}

	report, err := enc.Encode([]byte("v.example.com"))
	if err != nil {
		panic(err)
	}
	fmt.Println("report bytes:", len(report))

	// Output:
	// report bytes: 2
}

// This example uses the digest-based encoder with the reference client's
// MD5/HMAC-SHA256 functions.
func Example_digest() {
	params := rappor.Params{
		NumBits:   32,
		NumHashes: 2,
		ProbF:     0.25,
		ProbP:     0.35,
		ProbQ:     0.65,
	}

	enc, err := rappor.NewDigestEncoder("search-terms", 7, params,
		rappor.MD5Digest, rappor.HMACSHA256, []byte("per-client secret"),
		rappor.NewMWCRand(params))
	if err != nil {
		panic(err)
	}

	report, err := enc.EncodeString("v.example.com")
	if err != nil {
		panic(err)
	}
	fmt.Println("report bytes:", len(report))

	// Output:
	// report bytes: 4
}

// prrOnly is an IrrRand with p=0 and q=1, which makes the report equal
// the permanent randomized response exactly.
type prrOnly struct{ numBits int }

func (r prrOnly) PBits() rappor.BitVector { return rappor.BitVector{} }

func (r prrOnly) QBits() rappor.BitVector {
	var b rappor.BitVector
	for i := uint(0); i < uint(r.numBits); i++ {
		b.Set(i)
	}
	return b
}

// This example shows the memoization property of the permanent noise
// layer: with the instantaneous layer disabled, encoding the same value
// twice yields identical reports.
func Example_memoization() {
	params := rappor.Params{NumBits: 64, NumHashes: 2, ProbF: 0.5, ProbP: 0, ProbQ: 1}

	enc, err := rappor.NewEncoder("home-page", 0, params,
		rappor.NewMWCRand(params), prrOnly{numBits: 64})
	if err != nil {
		panic(err)
	}

	first, _ := enc.Encode([]byte("v.example.com"))
	second, _ := enc.Encode([]byte("v.example.com"))
	fmt.Println("same value, same permanent noise:", bytes.Equal(first, second))

	// Output:
	// same value, same permanent noise: true
}

// This example shows construction failure for an unsupported bit width.
func Example_unsupportedWidth() {
	params := rappor.Params{NumBits: 24, NumHashes: 2}

	_, err := rappor.NewEncoder("home-page", 0, params,
		rappor.NewMWCRand(params), rappor.NewMWCRand(params))
	fmt.Println(err)

	// Output:
	// rappor: unsupported bit width: 24
}
