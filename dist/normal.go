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

package dist

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/xlab-si/antithetic/pair"
)

// Normal generates common or antithetic Gaussian values with mean loc and
// standard deviation scale. The requested correlation applies to the
// Gaussian values directly: an affine map of a standard normal pair keeps
// its correlation, so no transform separates the marginal level from the
// raw level for this family.
type Normal struct {
	gen   *pair.Generator
	loc   float64
	scale float64
}

// NewNormal returns an antithetic Gaussian generator. correlation is the
// within-pair correlation in [-1, 1], loc the marginal mean and scale the
// marginal standard deviation, which must be positive. Without seed words
// the generator seeds itself from operating system entropy.
func NewNormal(correlation, loc, scale float64, seed ...uint64) (*Normal, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	gen, err := pair.NewGenerator(correlation, seed...)
	if err != nil {
		return nil, err
	}

	return &Normal{gen: gen, loc: loc, scale: scale}, nil
}

// NewNormalSource is NewNormal drawing its randomness from the provided
// source instead of a fresh Salsa20 stream.
func NewNormalSource(correlation, loc, scale float64, src rand.Source) (*Normal, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	gen, err := pair.NewGeneratorSource(correlation, src)
	if err != nil {
		return nil, err
	}

	return &Normal{gen: gen, loc: loc, scale: scale}, nil
}

// Next generates the next correlated Gaussian value.
func (d *Normal) Next() float64 {
	return d.scale*d.gen.Next() + d.loc
}

// Sequence generates the next n correlated Gaussian values arranged by the
// given method; see pair.Generator.Sequence for the arrangement semantics.
func (d *Normal) Sequence(n int, method pair.Method, mixSingles bool) ([]float64, error) {
	values, err := d.gen.Sequence(n, method, mixSingles)
	if err != nil {
		return nil, err
	}
	floats.Scale(d.scale, values)
	floats.AddConst(d.loc, values)

	return values, nil
}

// Loc returns the marginal mean parameter.
func (d *Normal) Loc() float64 {
	return d.loc
}

// SetLoc changes the marginal mean. The raw pair buffer survives the
// change: location applies at draw time.
func (d *Normal) SetLoc(loc float64) {
	d.loc = loc
}

// Scale returns the marginal standard deviation parameter.
func (d *Normal) Scale() float64 {
	return d.scale
}

// SetScale changes the marginal standard deviation, which must be
// positive. The raw pair buffer survives the change.
func (d *Normal) SetScale(scale float64) error {
	if err := checkScale(scale); err != nil {
		return err
	}
	d.scale = scale

	return nil
}

// Correlation returns the within-pair correlation of the generated values,
// identical to the raw normal-level correlation for this family.
func (d *Normal) Correlation() float64 {
	return d.gen.Correlation()
}

// SetCorrelation changes the within-pair correlation and discards a
// buffered raw value, which was mixed under the previous correlation.
func (d *Normal) SetCorrelation(c float64) error {
	return d.gen.SetCorrelation(c)
}

// SetSeed rekeys the underlying source; see pair.Generator.SetSeed.
func (d *Normal) SetSeed(seed ...uint64) error {
	return d.gen.SetSeed(seed...)
}

// SetSource replaces the underlying source; see pair.Generator.SetSource.
func (d *Normal) SetSource(src rand.Source) {
	d.gen.SetSource(src)
}

// Mean returns the marginal mean.
func (d *Normal) Mean() float64 {
	return d.marginal().Mean()
}

// StdDev returns the marginal standard deviation.
func (d *Normal) StdDev() float64 {
	return d.marginal().StdDev()
}

// Variance returns the marginal variance.
func (d *Normal) Variance() float64 {
	return d.marginal().Variance()
}

// marginal returns the distuv description of the configured marginal.
func (d *Normal) marginal() distuv.Normal {
	return distuv.Normal{Mu: d.loc, Sigma: d.scale}
}

// String produces a string representation of the generator.
func (d *Normal) String() string {
	return fmt.Sprintf("Normal(correlation = %f, loc = %f, scale = %f)",
		d.Correlation(), d.loc, d.scale)
}
