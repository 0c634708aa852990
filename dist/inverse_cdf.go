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
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/xlab-si/antithetic/pair"
)

// momentNodes is the Gauss-Legendre evaluation count for the numeric
// moment integrals of InverseCDF.
const momentNodes = 256

// Params holds the named distributional parameters of an InverseCDF
// generator.
type Params map[string]float64

// QuantileFunc maps a uniform value u in (0, 1) and the current parameter
// set onto the target distribution's quantile. Implementations must treat
// params as read-only; they may also ignore it entirely.
type QuantileFunc func(u float64, params Params) float64

// InverseCDF generates correlated values of an arbitrary marginal
// distribution given by its quantile (inverse cumulative distribution)
// function. As in the Uniform family the requested correlation applies to
// the intermediate uniform pair; how much of it the target marginal
// retains depends on the shape of the quantile function.
type InverseCDF struct {
	gen      *pair.Generator
	quantile QuantileFunc
	params   Params
}

// NewInverseCDF returns an antithetic generator for the marginal defined
// by the given quantile function and parameters. correlation is the
// within-pair correlation of the intermediate uniforms in [-1, 1].
// Without seed words the generator seeds itself from operating system
// entropy.
func NewInverseCDF(correlation float64, quantile QuantileFunc, params Params, seed ...uint64) (*InverseCDF, error) {
	if quantile == nil {
		return nil, errors.Wrap(ErrQuantile, "cannot construct inverse-CDF generator")
	}
	if err := checkCorrelation(correlation); err != nil {
		return nil, err
	}
	gen, err := pair.NewGenerator(UniformCorrelationToRaw(correlation), seed...)
	if err != nil {
		return nil, err
	}

	d := &InverseCDF{gen: gen, quantile: quantile, params: Params{}}
	for k, v := range params {
		d.params[k] = v
	}

	return d, nil
}

// Next generates the next correlated value of the target marginal.
func (d *InverseCDF) Next() float64 {
	return d.quantile(toUniform(d.gen.Next()), d.params)
}

// Sequence generates the next n correlated values arranged by the given
// method; see pair.Generator.Sequence for the arrangement semantics.
func (d *InverseCDF) Sequence(n int, method pair.Method, mixSingles bool) ([]float64, error) {
	values, err := d.gen.Sequence(n, method, mixSingles)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		values[i] = d.quantile(toUniform(v), d.params)
	}

	return values, nil
}

// Param returns the named distributional parameter and whether it is set.
func (d *InverseCDF) Param(name string) (float64, bool) {
	v, ok := d.params[name]

	return v, ok
}

// SetParam sets the named distributional parameter. The raw pair buffer
// survives the change: the quantile transform applies at draw time.
func (d *InverseCDF) SetParam(name string, value float64) {
	d.params[name] = value
}

// Params returns a copy of the current parameter set.
func (d *InverseCDF) Params() Params {
	params := Params{}
	for k, v := range d.params {
		params[k] = v
	}

	return params
}

// Correlation returns the within-pair correlation of the intermediate
// uniform values.
func (d *InverseCDF) Correlation() float64 {
	return RawCorrelationToUniform(d.gen.Correlation())
}

// SetCorrelation changes the within-pair correlation of the intermediate
// uniform values and discards a buffered raw value, which was mixed under
// the previous correlation.
func (d *InverseCDF) SetCorrelation(c float64) error {
	if err := checkCorrelation(c); err != nil {
		return err
	}

	return d.gen.SetCorrelation(UniformCorrelationToRaw(c))
}

// SetSeed rekeys the underlying source; see pair.Generator.SetSeed.
func (d *InverseCDF) SetSeed(seed ...uint64) error {
	return d.gen.SetSeed(seed...)
}

// SetSource replaces the underlying source; see pair.Generator.SetSource.
func (d *InverseCDF) SetSource(src rand.Source) {
	d.gen.SetSource(src)
}

// Mean returns the marginal mean, the integral of the quantile function
// over (0, 1), computed by fixed Gauss-Legendre quadrature. The result is
// an approximation; quantiles of heavy-tailed marginals lose accuracy
// near the interval ends.
func (d *InverseCDF) Mean() float64 {
	return quad.Fixed(func(u float64) float64 {
		return d.quantile(u, d.params)
	}, 0, 1, momentNodes, nil, 0)
}

// StdDev returns the marginal standard deviation; see Mean for the
// accuracy caveat.
func (d *InverseCDF) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Variance returns the marginal variance, computed by fixed
// Gauss-Legendre quadrature of the second moment; see Mean for the
// accuracy caveat.
func (d *InverseCDF) Variance() float64 {
	mean := d.Mean()
	second := quad.Fixed(func(u float64) float64 {
		q := d.quantile(u, d.params)

		return q * q
	}, 0, 1, momentNodes, nil, 0)

	return second - mean*mean
}

// String produces a string representation of the generator.
func (d *InverseCDF) String() string {
	names := make([]string, 0, len(d.params))
	for name := range d.params {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]string, len(names))
	for i, name := range names {
		params[i] = fmt.Sprintf("%s = %f", name, d.params[name])
	}

	return fmt.Sprintf("InverseCDF(correlation = %f, %s)",
		d.Correlation(), strings.Join(params, ", "))
}
