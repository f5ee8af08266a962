package main

import (
	"math"
	"testing"

	"github.com/henrywoo/rappor"
)

func TestEstimateTrueCountInvertsNoise(t *testing.T) {
	// For nTrue truly-set bits out of n reports, the expected set-bit
	// count is (p + (q-p)*f/2)*n + (q-p)/2*nTrue; the estimator must
	// recover nTrue from it for any f, not just the f=0.5 default.
	cases := []struct {
		name    string
		f, p, q float64
		n       int
		nTrue   int
	}{
		{"no permanent noise", 0, 0, 1, 1000, 600},
		{"quarter f", 0.25, 0.2, 0.8, 10000, 4000},
		{"default params", 0.5, 0.5, 0.75, 16000, 1000},
		{"high f", 0.75, 0.1, 0.9, 20000, 5000},
	}

	for _, tc := range cases {
		params := rappor.Params{NumBits: 8, NumHashes: 1, ProbF: tc.f, ProbP: tc.p, ProbQ: tc.q}
		expectedC := (tc.p+(tc.q-tc.p)*tc.f/2)*float64(tc.n) + (tc.q-tc.p)/2*float64(tc.nTrue)

		got := estimateTrueCount(int(math.Round(expectedC)), tc.n, params)
		if math.Abs(got-float64(tc.nTrue)) > 1.5 {
			t.Errorf("%s: estimate = %.2f, want %d", tc.name, got, tc.nTrue)
		}
	}
}

func TestEstimateTrueCountDegenerate(t *testing.T) {
	params := rappor.Params{NumBits: 8, NumHashes: 1, ProbF: 0.5, ProbP: 0.5, ProbQ: 0.5}
	if got := estimateTrueCount(100, 1000, params); !math.IsNaN(got) {
		t.Errorf("estimate with q == p = %v, want NaN", got)
	}
}
