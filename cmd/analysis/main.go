// Command analysis simulates a population of RAPPOR clients and checks
// the encoder's statistics from the collector's point of view: per-bit
// report frequencies against their closed-form expectation, and the
// uniformity of the direct hash.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/henrywoo/rappor"
)

func main() {
	var (
		numBits   = flag.Int("bits", 16, "report width in bits (8, 16, 32, 64, 128)")
		numHashes = flag.Int("hashes", 2, "bloom hash count")
		probF     = flag.Float64("f", 0.5, "permanent noise probability")
		probP     = flag.Float64("p", 0.5, "instantaneous probability for PRR bit 0")
		probQ     = flag.Float64("q", 0.75, "instantaneous probability for PRR bit 1")
		values    = flag.Int("values", 50, "number of distinct true values")
		reports   = flag.Int("reports", 1000, "reports per value")
	)
	flag.Parse()

	params := rappor.Params{
		NumBits:   *numBits,
		NumHashes: *numHashes,
		ProbF:     *probF,
		ProbP:     *probP,
		ProbQ:     *probQ,
	}
	if err := run(params, *values, *reports); err != nil {
		fmt.Fprintln(os.Stderr, "analysis:", err)
		os.Exit(1)
	}
}

func run(params rappor.Params, values, reports int) error {
	enc, err := rappor.NewEncoder("analysis", 0, params,
		rappor.NewMWCRand(params), rappor.NewMWCRand(params))
	if err != nil {
		return err
	}

	trueCounts := make([]int, params.NumBits)
	reportCounts := make([]int, params.NumBits)
	total := 0

	for v := 0; v < values; v++ {
		value := fmt.Appendf(nil, "value-%d", v)

		bloom := enc.BloomBits(value)
		for bit := 0; bit < params.NumBits; bit++ {
			if bloom.Has(uint(bit)) {
				trueCounts[bit] += reports
			}
		}

		for r := 0; r < reports; r++ {
			report, err := enc.Encode(value)
			if err != nil {
				return err
			}
			for i, octet := range report {
				for bit := 0; bit < 8; bit++ {
					if octet&(1<<bit) != 0 {
						reportCounts[8*i+bit]++
					}
				}
			}
			total++
		}
	}

	fmt.Printf("%d reports, %d bits, h=%d f=%.2f p=%.2f q=%.2f\n\n",
		total, params.NumBits, params.NumHashes, params.ProbF, params.ProbP, params.ProbQ)
	fmt.Printf("%4s %8s %8s %10s\n", "bit", "true", "observed", "estimated")

	var worst float64
	for bit := 0; bit < params.NumBits; bit++ {
		estimated := estimateTrueCount(reportCounts[bit], total, params)
		fmt.Printf("%4d %8d %8d %10.1f\n", bit, trueCounts[bit], reportCounts[bit], estimated)
		worst = math.Max(worst, math.Abs(estimated-float64(trueCounts[bit])))
	}
	fmt.Printf("\nworst estimate error: %.1f reports\n", worst)

	return nil
}

// estimateTrueCount inverts the randomized-response noise for one bit.
// The permanent pass reports the true bit only where the uniform mask is
// 0, so for a true bit b the chance of a set report bit is
//
//	P(report=1 | b) = p + (q-p) * (f/2 + b/2)
//
// and given c reports with the bit set out of n, the expected number of
// reports whose bloom bit was truly set is
//
//	(c - (p + f*q/2 - f*p/2) * n) / ((q-p) / 2)
func estimateTrueCount(c, n int, params rappor.Params) float64 {
	f, p, q := params.ProbF, params.ProbP, params.ProbQ
	denom := (q - p) / 2
	if denom == 0 {
		return math.NaN()
	}
	return (float64(c) - (p+0.5*f*q-0.5*f*p)*float64(n)) / denom
}
