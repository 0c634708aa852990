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
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/xlab-si/antithetic/pair"
)

// Sampler is the contract shared by all antithetic streams: the next
// value, or the next n values arranged by the given method. pair.Generator
// satisfies it with raw standard normal values; the variants in this
// package satisfy it with their marginal distributions.
type Sampler interface {
	Next() float64
	Sequence(n int, method pair.Method, mixSingles bool) ([]float64, error)
}

// Distribution extends Sampler with the read-only quantities every
// variant derives from its parameters. Mean, StdDev and Variance describe
// the marginal distribution; Correlation is the within-pair correlation
// of the marginal values.
type Distribution interface {
	Sampler
	Mean() float64
	StdDev() float64
	Variance() float64
	Correlation() float64
}

var (
	_ Sampler = (*pair.Generator)(nil)

	_ Distribution = (*Normal)(nil)
	_ Distribution = (*Uniform)(nil)
	_ Distribution = (*Exponential)(nil)
	_ Distribution = (*InverseCDF)(nil)
)

// toUniform maps a raw standard normal value onto (0, 1) through the
// standard normal CDF. Applied to both members of a raw pair it yields a
// uniform pair whose correlation follows RawCorrelationToUniform.
func toUniform(raw float64) float64 {
	return distuv.UnitNormal.CDF(raw)
}

// checkCorrelation validates a marginal-level correlation before it is
// transformed, since the transform folds some out-of-range requests back
// into the valid raw range.
func checkCorrelation(c float64) error {
	if math.IsNaN(c) || c < -1 || c > 1 {
		return errors.Wrapf(pair.ErrCorrelation, "invalid correlation %v", c)
	}

	return nil
}

func checkScale(scale float64) error {
	if !(scale > 0) {
		return errors.Wrapf(ErrScale, "invalid scale %v", scale)
	}

	return nil
}
