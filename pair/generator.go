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

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Generator produces a stream of standard normal values in which every
// sequentially generated pair shares a fixed correlation while values from
// distinct pairs stay independent. Each pair is built from two independent
// standard normals X and Y as (X, rho*X + sqrt(1-rho^2)*Y); the second
// member is buffered and returned by the following call, so single draws
// and batch draws walk the same stream.
//
// A Generator holds mutable buffering state and is not safe for concurrent
// use. Callers running simulations in parallel should give every goroutine
// its own generator, seeded through SeedSequence.Spawn.
type Generator struct {
	rho  float64
	rng  *rand.Rand
	have bool
	hold float64
}

// NewGenerator returns a generator producing pairs with the given
// correlation, which must lie in [-1, 1]. The optional seed words key the
// underlying deterministic source; without them the generator seeds itself
// from operating system entropy.
func NewGenerator(rho float64, seed ...uint64) (*Generator, error) {
	src, err := NewSource(seed...)
	if err != nil {
		return nil, err
	}

	return NewGeneratorSource(rho, src)
}

// NewGeneratorSource returns a generator producing pairs with the given
// correlation, drawing its randomness from the provided source. It accepts
// any rand.Source, so callers may plug in their own generators in place of
// the Salsa20 stream used by NewGenerator.
func NewGeneratorSource(rho float64, src rand.Source) (*Generator, error) {
	if err := checkCorrelation(rho); err != nil {
		return nil, err
	}

	return &Generator{rho: rho, rng: rand.New(src)}, nil
}

func checkCorrelation(rho float64) error {
	if math.IsNaN(rho) || rho < -1 || rho > 1 {
		return errors.Wrapf(ErrCorrelation, "invalid correlation %v", rho)
	}

	return nil
}

// Next returns the next value of the stream. Every value is marginally
// standard normal; this value and its pair partner, the preceding call
// when a buffered member was consumed and the following call otherwise,
// have correlation Correlation().
func (g *Generator) Next() float64 {
	if g.have {
		g.have = false
		return g.hold
	}

	w1, w2 := g.MixingWeights()
	x := g.rng.NormFloat64()
	y := g.rng.NormFloat64()
	g.hold = w1*x + w2*y
	g.have = true

	return x
}

// Correlation returns the correlation enforced within each generated pair.
func (g *Generator) Correlation() float64 {
	return g.rho
}

// SetCorrelation changes the within-pair correlation for all subsequent
// pairs. A buffered second member is discarded: it was mixed with the
// previous weights and must not surface in a stream nominally governed by
// the new value.
func (g *Generator) SetCorrelation(rho float64) error {
	if err := checkCorrelation(rho); err != nil {
		return err
	}
	g.rho = rho
	g.have = false

	return nil
}

// SetSeed rekeys the underlying source from the given seed words, or from
// operating system entropy when none are given. Any buffered value is
// discarded so that nothing generated under the previous key survives the
// reseed.
func (g *Generator) SetSeed(seed ...uint64) error {
	src, err := NewSource(seed...)
	if err != nil {
		return err
	}
	g.SetSource(src)

	return nil
}

// SetSource replaces the underlying source and discards any buffered
// value.
func (g *Generator) SetSource(src rand.Source) {
	g.rng = rand.New(src)
	g.have = false
}

// MixingWeights returns the weights (rho, sqrt(1-rho^2)) mixing two
// independent standard normals X and Y into the second pair member
// Z = rho*X + sqrt(1-rho^2)*Y, which is again standard normal and
// satisfies Corr(X, Z) = rho.
func (g *Generator) MixingWeights() (float64, float64) {
	return g.rho, math.Sqrt(1 - g.rho*g.rho)
}

// Covariance returns the 2x2 covariance matrix of a generated pair.
func (g *Generator) Covariance() *mat.SymDense {
	cov, _ := BivariateCovariance(g.rho)

	return cov
}

// String produces a string representation of the generator.
func (g *Generator) String() string {
	return fmt.Sprintf("Generator(correlation = %f)", g.rho)
}
