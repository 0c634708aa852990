/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pair

import "github.com/pkg/errors"

// Sequence generates the next n stream values at once, consuming the
// underlying source exactly as n calls of Next would, and arranges them by
// the given method before returning.
//
// With Zip the result is identical to n collected Next values: a buffered
// second member opens the sequence, complete pairs follow interleaved, and
// when one value of a final pair is still owed it closes the sequence
// while its partner stays buffered for later calls. Concatenate instead
// places all first members ahead of all second members, with any leading
// or trailing single pinned at its end. Shuffle starts from the
// concatenated arrangement and randomly permutes it; mixSingles controls
// whether such boundary singles join the permutation or keep their
// positions. The singles fall where repeated single draws would have put
// them, so mixed batch and single generation stays reproducible.
//
// Whatever the method, the returned slice holds the same values and the
// same correlated pairs; only the positions of the pair members differ.
func (g *Generator) Sequence(n int, method Method, mixSingles bool) ([]float64, error) {
	if !method.known() {
		return nil, errors.Wrapf(ErrMethod, "cannot assemble by %v", method)
	}
	if n <= 0 {
		return nil, errors.Wrapf(ErrCount, "cannot generate %d values", n)
	}
	if n == 1 {
		return []float64{g.Next()}, nil
	}

	values := make([]float64, n)

	// A buffered second member always opens the sequence.
	front := 0
	if g.have {
		values[0] = g.hold
		g.have = false
		front = 1
	}

	// An odd remainder means the final slot takes the first member of a
	// fresh pair and its partner stays buffered, leaving the generator in
	// the same state as after n single draws.
	back := (n - front) % 2
	half := (n - front - back) / 2

	w1, w2 := g.MixingWeights()
	firsts := make([]float64, half)
	seconds := make([]float64, half)
	for i := range firsts {
		x := g.rng.NormFloat64()
		y := g.rng.NormFloat64()
		firsts[i] = x
		seconds[i] = w1*x + w2*y
	}

	if back == 1 {
		x := g.rng.NormFloat64()
		y := g.rng.NormFloat64()
		values[n-1] = x
		g.hold = w1*x + w2*y
		g.have = true
	}

	switch method {
	case Zip:
		for i := range firsts {
			values[front+2*i] = firsts[i]
			values[front+2*i+1] = seconds[i]
		}
	case Concatenate, Shuffle:
		copy(values[front:], firsts)
		copy(values[front+half:], seconds)
		if method == Shuffle {
			g.permute(values, front, back, mixSingles)
		}
	}

	return values, nil
}

// permute rearranges an assembled sequence in place. With mixSingles the
// permutation spans the whole sequence including any boundary singles;
// otherwise the singles hold their positions and only the interior pairs
// move.
//
// TODO: draw the permutation from a spawned child source so that choosing
// Shuffle does not advance the value stream relative to the other methods.
func (g *Generator) permute(values []float64, front, back int, mixSingles bool) {
	if mixSingles {
		perm := g.rng.Perm(len(values))
		shuffled := make([]float64, len(values))
		for i, j := range perm {
			shuffled[i] = values[j]
		}
		copy(values, shuffled)

		return
	}

	interior := len(values) - front - back
	perm := g.rng.Perm(interior)
	shuffled := make([]float64, interior)
	for i, j := range perm {
		shuffled[i] = values[front+j]
	}
	copy(values[front:], shuffled)
}
