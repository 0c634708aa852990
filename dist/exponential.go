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

// Exponential generates common or antithetic exponential values on
// [loc, inf): each draw is loc - scale*ln(1-U) for a correlated uniform U
// obtained as in the Uniform family. The requested correlation therefore
// applies to the intermediate uniform pair, not to the exponential values;
// the monotone quantile map preserves its sign and rank order but not its
// magnitude. See NewExponentialDirect for the rejected alternative.
type Exponential struct {
	gen   *pair.Generator
	loc   float64
	scale float64
}

// NewExponential returns an antithetic exponential generator. correlation
// is the within-pair correlation of the intermediate uniforms in [-1, 1],
// loc shifts the support and scale, which must be positive, is the mean
// distance from loc. Without seed words the generator seeds itself from
// operating system entropy.
func NewExponential(correlation, loc, scale float64, seed ...uint64) (*Exponential, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	if err := checkCorrelation(correlation); err != nil {
		return nil, err
	}
	gen, err := pair.NewGenerator(UniformCorrelationToRaw(correlation), seed...)
	if err != nil {
		return nil, err
	}

	return &Exponential{gen: gen, loc: loc, scale: scale}, nil
}

// NewExponentialRate is NewExponential parameterized by the event rate
// instead of the scale: scale = 1/rate.
func NewExponentialRate(correlation, loc, rate float64, seed ...uint64) (*Exponential, error) {
	if !(rate > 0) {
		return nil, errors.Wrapf(ErrScale, "invalid rate %v", rate)
	}

	return NewExponential(correlation, loc, 1/rate, seed...)
}

// NewExponentialDirect would interpret the requested correlation at the
// level of the exponential values themselves. No closed form maps such a
// correlation onto the underlying normal one, so the construction is
// rejected outright rather than silently approximated.
func NewExponentialDirect(correlation, loc, scale float64, seed ...uint64) (*Exponential, error) {
	return nil, errors.Wrap(ErrDirectCorrelation,
		"construct with a uniform-level correlation instead")
}

// Next generates the next correlated exponential value.
func (d *Exponential) Next() float64 {
	return d.loc + d.marginal().Quantile(toUniform(d.gen.Next()))
}

// Sequence generates the next n correlated exponential values arranged by
// the given method; see pair.Generator.Sequence for the arrangement
// semantics.
func (d *Exponential) Sequence(n int, method pair.Method, mixSingles bool) ([]float64, error) {
	values, err := d.gen.Sequence(n, method, mixSingles)
	if err != nil {
		return nil, err
	}
	marginal := d.marginal()
	for i, v := range values {
		values[i] = d.loc + marginal.Quantile(toUniform(v))
	}

	return values, nil
}

// Loc returns the lower end of the support.
func (d *Exponential) Loc() float64 {
	return d.loc
}

// SetLoc changes the lower end of the support. The raw pair buffer
// survives the change: location applies at draw time.
func (d *Exponential) SetLoc(loc float64) {
	d.loc = loc
}

// Scale returns the scale parameter, the mean distance from loc.
func (d *Exponential) Scale() float64 {
	return d.scale
}

// SetScale changes the scale parameter, which must be positive. The raw
// pair buffer survives the change.
func (d *Exponential) SetScale(scale float64) error {
	if err := checkScale(scale); err != nil {
		return err
	}
	d.scale = scale

	return nil
}

// Rate returns the event rate, the reciprocal of the scale.
func (d *Exponential) Rate() float64 {
	return 1 / d.scale
}

// SetRate changes the event rate, which must be positive. The raw pair
// buffer survives the change.
func (d *Exponential) SetRate(rate float64) error {
	if !(rate > 0) {
		return errors.Wrapf(ErrScale, "invalid rate %v", rate)
	}
	d.scale = 1 / rate

	return nil
}

// Correlation returns the within-pair correlation of the intermediate
// uniform values.
func (d *Exponential) Correlation() float64 {
	return RawCorrelationToUniform(d.gen.Correlation())
}

// SetCorrelation changes the within-pair correlation of the intermediate
// uniform values and discards a buffered raw value, which was mixed under
// the previous correlation.
func (d *Exponential) SetCorrelation(c float64) error {
	if err := checkCorrelation(c); err != nil {
		return err
	}

	return d.gen.SetCorrelation(UniformCorrelationToRaw(c))
}

// SetSeed rekeys the underlying source; see pair.Generator.SetSeed.
func (d *Exponential) SetSeed(seed ...uint64) error {
	return d.gen.SetSeed(seed...)
}

// SetSource replaces the underlying source; see pair.Generator.SetSource.
func (d *Exponential) SetSource(src rand.Source) {
	d.gen.SetSource(src)
}

// Mean returns the marginal mean loc + scale.
func (d *Exponential) Mean() float64 {
	return d.loc + d.marginal().Mean()
}

// StdDev returns the marginal standard deviation.
func (d *Exponential) StdDev() float64 {
	return d.marginal().StdDev()
}

// Variance returns the marginal variance.
func (d *Exponential) Variance() float64 {
	return d.marginal().Variance()
}

// marginal returns the distuv description of the configured marginal,
// unshifted.
func (d *Exponential) marginal() distuv.Exponential {
	return distuv.Exponential{Rate: 1 / d.scale}
}

// String produces a string representation of the generator.
func (d *Exponential) String() string {
	return fmt.Sprintf("Exponential(correlation = %f, loc = %f, scale = %f)",
		d.Correlation(), d.loc, d.scale)
}
