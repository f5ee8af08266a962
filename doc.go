// Package rappor implements the client-side RAPPOR encoding transform.
//
// RAPPOR (Randomized Aggregatable Privacy-Preserving Ordinal Response)
// converts a raw categorical value into a noised, fixed-width bit report.
// The collector can estimate aggregate statistics over many reports, but
// no individual report reveals the client's true value. The transform has
// three stages:
//
//  1. Hashing: the value is hashed into a Bloom-filter-style membership
//     vector of NumBits bits.
//  2. Permanent randomized response (PRR): a noise layer that is a
//     deterministic function of the value, so repeated reports of the
//     same value carry the same noise. Per bit, the output is the true
//     bit with probability 1/2 and otherwise a coin biased by ProbF.
//  3. Instantaneous randomized response (IRR): a fresh noise layer drawn
//     on every report. A PRR bit of 0 reports 1 with probability ProbP;
//     a PRR bit of 1 reports 1 with probability ProbQ.
//
// The final vector is packed into NumBits/8 little-endian bytes.
//
// # Encoders
//
// Two encoder variants are provided, differing only in the hashing stage:
//
// [Encoder] hashes the value with a rolling djb2-style string hash, once
// per hash index.
//
// [DigestEncoder] computes a single cryptographic digest of the value and
// slices it into consecutive fixed-width chunks, each selecting one bit.
// The digest and MAC functions are pluggable ([DigestFunc], [HMACFunc]);
// [MD5Digest] with [HMACSHA256] reproduces the reference client, and
// [Blake3Digest] is a modern alternative.
//
// # Randomness sources
//
// The encoders draw noise through small capability interfaces so the
// randomness strategy is swappable:
//
// [DeterministicRand] supplies the memoized PRR noise. [MWCRand]
// implements it with an explicitly owned PRNG reseeded from a 128-bit
// hash of the value; [HMACRand] derives the noise from an HMAC of the
// value under a client secret, as the reference client does.
//
// [IrrRand] supplies the fresh per-report IRR noise. [MWCRand] implements
// it as well. [NoiseRand] is the legacy combined source; any NoiseRand
// satisfies IrrRand.
//
// # Choosing parameters
//
// NumBits must be one of 8, 16, 32, 64 or 128. The reference deployments
// use NumBits=16, NumHashes=2 with ProbF=0.5, ProbP=0.5, ProbQ=0.75:
//
//	params := rappor.Params{
//		NumBits:   16,
//		NumHashes: 2,
//		ProbF:     0.5,
//		ProbP:     0.5,
//		ProbQ:     0.75,
//	}
//
// A cohort identifier partitions clients into groups for later aggregate
// estimation; it is stored on the encoder and reported out-of-band.
//
// # Thread safety
//
// Encoders and randomness sources are NOT safe for concurrent use. The
// PRR stage is a seed-then-draw sequence on the deterministic source, and
// interleaving two encodes on one source breaks the memoization property.
// Give each concurrent worker its own encoder and its own randomness
// source instances; the sources are cheap to construct.
//
// # References
//
//   - RAPPOR paper: https://arxiv.org/abs/1407.6981
//   - Reference implementation: https://github.com/google/rappor
package rappor
