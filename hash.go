package rappor

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// DigestFunc maps a byte string to a fixed-size digest of at least 8
// bytes. Implementations must be pure: identical input, identical digest.
type DigestFunc func(data []byte) []byte

// HMACFunc maps a key and a byte string to a fixed-size keyed digest.
// Implementations must be pure.
type HMACFunc func(key, data []byte) []byte

// MD5Digest is the reference client's DigestFunc.
func MD5Digest(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}

// Blake3Digest is an alternative DigestFunc with a 32-byte output.
func Blake3Digest(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// HMACSHA256 is the reference client's HMACFunc.
func HMACSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// djb2Hash computes the rolling string hash h = h*33 + c seeded at 5381,
// with the hash index folded into the seed state ahead of the value so
// distinct indices produce distinct hash functions. Arithmetic is uint32;
// the caller reduces modulo the report width.
func djb2Hash(value []byte, hashIndex uint32) uint32 {
	h := uint32(5381)
	h = h*33 + hashIndex
	for _, c := range value {
		h = h*33 + uint32(c)
	}
	return h
}

// seedFromValue derives a 128-bit deterministic PRNG seed from a value.
func seedFromValue(value []byte) (x, c uint64) {
	h := xxh3.Hash128(value)
	return h.Hi, h.Lo
}
