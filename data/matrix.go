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
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/xlab-si/antithetic/dist"
	"github.com/xlab-si/antithetic/pair"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and returns a new Matrix
// instance. It returns an error if not all the vectors have the same
// number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrapf(ErrSize, "row %d has %d elements, want %d", i, len(v), l)
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new rows x cols Matrix instance with elements
// drawn row by row from the provided sampler. Rows of a matrix filled
// from a pair-correlated sampler with an even number of columns hold
// whole pairs, which makes the column statistics of such a matrix the
// natural cross-replication diagnostic.
func NewRandomMatrix(rows, cols int, sampler dist.Sampler) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = NewRandomVector(cols, sampler)
	}

	return m
}

// NewSequenceMatrix returns a new rows x cols Matrix instance whose rows
// are consecutive sequences drawn from the provided sampler, each
// arranged by the given method. It returns an error if the sampler
// rejects the arguments.
func NewSequenceMatrix(rows, cols int, method pair.Method, mixSingles bool, sampler dist.Sampler) (Matrix, error) {
	m := make(Matrix, rows)
	for i := range m {
		values, err := sampler.Sequence(cols, method, mixSingles)
		if err != nil {
			return nil, err
		}
		m[i] = NewVector(values)
	}

	return m, nil
}

// NewConstantMatrix returns a new rows x cols Matrix instance with all
// elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = NewConstantVector(cols, c)
	}

	return m
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices m and other have
// the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// Copy creates a new matrix with the same values of the elements.
func (m Matrix) Copy() Matrix {
	newMat := make(Matrix, len(m))
	for i, v := range m {
		newMat[i] = v.Copy()
	}

	return newMat
}

// GetCol returns the i-th column of matrix m as a vector. It returns an
// error if i exceeds the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, errors.Wrapf(ErrSize, "no column %d in a %dx%d matrix", i, m.Rows(), m.Cols())
	}

	column := make(Vector, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return column, nil
}

// Transpose transposes matrix m and returns the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// Flatten returns the elements of matrix m in a single row-major vector.
func (m Matrix) Flatten() Vector {
	flat := make(Vector, 0, m.Rows()*m.Cols())
	for _, v := range m {
		flat = append(flat, v...)
	}

	return flat
}

// Dense returns the matrix as a new gonum dense matrix.
func (m Matrix) Dense() *mat.Dense {
	if m.Rows() == 0 || m.Cols() == 0 {
		return &mat.Dense{}
	}

	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i, v := range m {
		d.SetRow(i, v)
	}

	return d
}

// Covariance returns the unbiased sample covariance matrix of the
// columns of m, treating every row as one observation. It returns an
// error if the matrix is empty.
func (m Matrix) Covariance() (*mat.SymDense, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, errors.Wrap(ErrSize, "cannot compute the covariance of an empty matrix")
	}

	cov := &mat.SymDense{}
	stat.CovarianceMatrix(cov, m.Dense(), nil)

	return cov, nil
}

// String produces a string representation of a matrix.
func (m Matrix) String() string {
	rows := make([]string, len(m))
	for i, v := range m {
		rows[i] = v.String()
	}

	return strings.Join(rows, "\n")
}
