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

package data

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/xlab-si/antithetic/dist"
)

// ErrSize signals an operation over vectors or matrices of incompatible
// sizes.
var ErrSize = errors.New("operands must have the same size")

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(values []float64) Vector {
	return Vector(values)
}

// NewRandomVector returns a new Vector instance with n elements drawn one
// by one from the provided sampler.
func NewRandomVector(n int, sampler dist.Sampler) Vector {
	vec := make(Vector, n)
	for i := range vec {
		vec[i] = sampler.Next()
	}

	return vec
}

// NewConstantVector returns a new Vector instance with all n elements set
// to constant c.
func NewConstantVector(n int, c float64) Vector {
	vec := make(Vector, n)
	for i := range vec {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values of the elements.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Mean returns the sample mean of the elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance of the elements.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}

// StdDev returns the unbiased sample standard deviation of the elements.
func (v Vector) StdDev() float64 {
	return stat.StdDev(v, nil)
}

// Add adds vectors v and other element-wise. The result is returned in a
// new Vector. It returns an error if the vectors differ in size.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrapf(ErrSize, "%d against %d elements", len(v), len(other))
	}
	sum := v.Copy()
	floats.Add(sum, other)

	return sum, nil
}

// Sub subtracts vector other from v element-wise. The result is returned
// in a new Vector. It returns an error if the vectors differ in size.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrapf(ErrSize, "%d against %d elements", len(v), len(other))
	}
	diff := v.Copy()
	floats.Sub(diff, other)

	return diff, nil
}

// MulScalar multiplies vector v by a given scalar x. The result is
// returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// AddConst adds a constant c to every element. The result is returned in
// a new Vector.
func (v Vector) AddConst(c float64) Vector {
	res := v.Copy()
	floats.AddConst(c, res)

	return res
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if the vectors differ in size.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrapf(ErrSize, "%d against %d elements", len(v), len(other))
	}

	return floats.Dot(v, other), nil
}

// Correlation returns the empirical Pearson correlation between the
// paired elements of v and other. It returns an error if the vectors
// differ in size.
func (v Vector) Correlation(other Vector) (float64, error) {
	return Correlation(v, other)
}

// Correlation calculates the empirical Pearson correlation between the
// paired elements of x and y, the standard diagnostic for the streams
// generated by this module. It returns an error if the vectors differ in
// size.
func Correlation(x, y Vector) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.Wrapf(ErrSize, "%d against %d elements", len(x), len(y))
	}

	return stat.Correlation(x, y, nil), nil
}

// Deinterleave splits the vector into the elements at even and at odd
// positions, keeping their order. For a zip-arranged sequence the two
// halves hold the first and the second members of each pair.
func (v Vector) Deinterleave() (Vector, Vector) {
	evens := make(Vector, 0, (len(v)+1)/2)
	odds := make(Vector, 0, len(v)/2)
	for i, x := range v {
		if i%2 == 0 {
			evens = append(evens, x)
		} else {
			odds = append(odds, x)
		}
	}

	return evens, odds
}

// Pairs reshapes a vector of 2k elements into a matrix of k rows holding
// the consecutive (first, second) element pairs. It returns an error if
// the size is odd.
func (v Vector) Pairs() (Matrix, error) {
	if len(v)%2 != 0 {
		return nil, errors.Wrapf(ErrSize, "cannot pair %d elements", len(v))
	}

	m := make(Matrix, len(v)/2)
	for i := range m {
		m[i] = Vector{v[2*i], v[2*i+1]}
	}

	return m, nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}

	return sb.String()
}
