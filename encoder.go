package rappor

// Encoder produces RAPPOR reports using a direct rolling string hash for
// the bloom stage. It is immutable after construction; one encoder is
// built per (metric, cohort) pairing.
//
// The encoder does not own its randomness sources. They must outlive
// every Encode call, and they must not be shared with another encoder
// that runs concurrently.
type Encoder struct {
	name     string
	cohort   int
	params   Params
	det      DeterministicRand
	irr      IrrRand
	numBytes int
	valid    bool
}

// NewEncoder validates params and returns an encoder for the named
// metric. The cohort selects which hash-function family the client
// belongs to; it is stored for reporting and does not alter the single
// family implemented here.
func NewEncoder(name string, cohort int, params Params, det DeterministicRand, irr IrrRand) (*Encoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if det == nil || irr == nil {
		return nil, ErrNilRand
	}
	return &Encoder{
		name:     name,
		cohort:   cohort,
		params:   params,
		det:      det,
		irr:      irr,
		numBytes: params.NumBytes(),
		valid:    true,
	}, nil
}

// IsValid reports whether the encoder was constructed successfully.
func (e *Encoder) IsValid() bool {
	return e != nil && e.valid
}

// Name returns the metric name.
func (e *Encoder) Name() string { return e.name }

// Cohort returns the cohort identifier.
func (e *Encoder) Cohort() int { return e.cohort }

// NumBytes returns the report size in bytes.
func (e *Encoder) NumBytes() int { return e.numBytes }

// BloomBits returns the unnoised membership vector for value: one djb2
// hash per hash index, reduced modulo NumBits. The result reveals the
// value and must never leave the client; it is exposed for simulation
// and analysis tooling. On an invalid encoder the vector is zero.
func (e *Encoder) BloomBits(value []byte) BitVector {
	var b BitVector
	if !e.IsValid() {
		return b
	}
	for i := 0; i < e.params.NumHashes; i++ {
		h := djb2Hash(value, uint32(i))
		b.Set(uint(h % uint32(e.params.NumBits)))
	}
	return b
}

// Encode transforms value into a noised report of NumBytes little-endian
// bytes. Encoding the same value twice reproduces the same permanent
// noise layer but fresh instantaneous noise.
func (e *Encoder) Encode(value []byte) ([]byte, error) {
	if !e.IsValid() {
		return nil, ErrInvalidEncoder
	}
	irr := randomize(e.det, e.irr, value, e.BloomBits(value))
	return irr.AppendLE(make([]byte, 0, e.numBytes), e.numBytes), nil
}

// EncodeString is a convenience wrapper around Encode.
func (e *Encoder) EncodeString(value string) ([]byte, error) {
	return e.Encode([]byte(value))
}

// randomize applies the two randomized-response passes shared by both
// encoder variants.
//
// PRR: seed the deterministic source with the value so the masks are
// memoized per value, then per bit take the biased noise bit where
// uniform is 1 and the true bloom bit where it is 0.
//
// IRR: per bit, draw with probability ProbP where the PRR bit is 0 and
// ProbQ where it is 1, from fresh randomness on every call.
func randomize(det DeterministicRand, irr IrrRand, value []byte, bloom BitVector) BitVector {
	det.Seed(value)
	fBits := det.FBits()
	uniform := det.Uniform()
	prr := fBits.And(uniform).Or(bloom.AndNot(uniform))

	pBits := irr.PBits()
	qBits := irr.QBits()
	return pBits.AndNot(prr).Or(qBits.And(prr))
}
