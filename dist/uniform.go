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

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/xlab-si/antithetic/pair"
)

// Uniform generates common or antithetic uniform values on [low, high).
// The requested correlation is the within-pair correlation of the uniform
// values themselves: the raw normal pairs are generated at the
// UniformCorrelationToRaw-transformed correlation and mapped through the
// standard normal CDF, which lands them uniformly on the target range.
type Uniform struct {
	gen  *pair.Generator
	low  float64
	high float64
}

// NewUniform returns an antithetic uniform generator on [low, high).
// correlation is the within-pair correlation in [-1, 1]. Bounds given in
// descending order are swapped; coinciding bounds describe no
// distribution and are rejected. Without seed words the generator seeds
// itself from operating system entropy.
func NewUniform(correlation, low, high float64, seed ...uint64) (*Uniform, error) {
	if low == high {
		return nil, errors.Wrapf(ErrRange, "cannot generate on [%v, %v)", low, high)
	}
	if err := checkCorrelation(correlation); err != nil {
		return nil, err
	}
	gen, err := pair.NewGenerator(UniformCorrelationToRaw(correlation), seed...)
	if err != nil {
		return nil, err
	}
	if low > high {
		low, high = high, low
	}

	return &Uniform{gen: gen, low: low, high: high}, nil
}

// NewUniformSource is NewUniform drawing its randomness from the provided
// source instead of a fresh Salsa20 stream.
func NewUniformSource(correlation, low, high float64, src rand.Source) (*Uniform, error) {
	if low == high {
		return nil, errors.Wrapf(ErrRange, "cannot generate on [%v, %v)", low, high)
	}
	if err := checkCorrelation(correlation); err != nil {
		return nil, err
	}
	gen, err := pair.NewGeneratorSource(UniformCorrelationToRaw(correlation), src)
	if err != nil {
		return nil, err
	}
	if low > high {
		low, high = high, low
	}

	return &Uniform{gen: gen, low: low, high: high}, nil
}

// Next generates the next correlated uniform value.
func (d *Uniform) Next() float64 {
	return d.Range()*toUniform(d.gen.Next()) + d.low
}

// Sequence generates the next n correlated uniform values arranged by the
// given method; see pair.Generator.Sequence for the arrangement semantics.
func (d *Uniform) Sequence(n int, method pair.Method, mixSingles bool) ([]float64, error) {
	values, err := d.gen.Sequence(n, method, mixSingles)
	if err != nil {
		return nil, err
	}
	span := d.Range()
	for i, v := range values {
		values[i] = span*toUniform(v) + d.low
	}

	return values, nil
}

// Low returns the inclusive lower bound of the range.
func (d *Uniform) Low() float64 {
	return d.low
}

// High returns the exclusive upper bound of the range.
func (d *Uniform) High() float64 {
	return d.high
}

// Range returns the width of the range.
func (d *Uniform) Range() float64 {
	return d.high - d.low
}

// SetRange changes the bounds of the range, swapping them when given in
// descending order and rejecting coinciding bounds. The raw pair buffer
// survives the change: bounds apply at draw time.
func (d *Uniform) SetRange(low, high float64) error {
	if low == high {
		return errors.Wrapf(ErrRange, "cannot generate on [%v, %v)", low, high)
	}
	if low > high {
		low, high = high, low
	}
	d.low, d.high = low, high

	return nil
}

// Correlation returns the within-pair correlation of the uniform values.
func (d *Uniform) Correlation() float64 {
	return RawCorrelationToUniform(d.gen.Correlation())
}

// SetCorrelation changes the within-pair correlation of the uniform
// values and discards a buffered raw value, which was mixed under the
// previous correlation.
func (d *Uniform) SetCorrelation(c float64) error {
	if err := checkCorrelation(c); err != nil {
		return err
	}

	return d.gen.SetCorrelation(UniformCorrelationToRaw(c))
}

// SetSeed rekeys the underlying source; see pair.Generator.SetSeed.
func (d *Uniform) SetSeed(seed ...uint64) error {
	return d.gen.SetSeed(seed...)
}

// SetSource replaces the underlying source; see pair.Generator.SetSource.
func (d *Uniform) SetSource(src rand.Source) {
	d.gen.SetSource(src)
}

// Mean returns the marginal mean.
func (d *Uniform) Mean() float64 {
	return d.marginal().Mean()
}

// StdDev returns the marginal standard deviation.
func (d *Uniform) StdDev() float64 {
	return d.marginal().StdDev()
}

// Variance returns the marginal variance.
func (d *Uniform) Variance() float64 {
	return d.marginal().Variance()
}

// marginal returns the distuv description of the configured marginal.
func (d *Uniform) marginal() distuv.Uniform {
	return distuv.Uniform{Min: d.low, Max: d.high}
}

// String produces a string representation of the generator.
func (d *Uniform) String() string {
	return fmt.Sprintf("Uniform(correlation = %f, low = %f, high = %f)",
		d.Correlation(), d.low, d.high)
}
