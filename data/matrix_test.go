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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlab-si/antithetic/dist"
	"github.com/xlab-si/antithetic/pair"
)

func TestNewMatrix(t *testing.T) {
	_, err := NewMatrix([]Vector{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrSize, "ragged rows should be rejected")

	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.True(t, m.DimsMatch(m.Copy()))
	assert.False(t, m.DimsMatch(Matrix{}))
}

func TestMatrix_TransposeAndColumns(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	mT := m.Transpose()
	assert.Equal(t, 3, mT.Rows())
	assert.Equal(t, 2, mT.Cols())
	assert.Equal(t, NewVector([]float64{2, 5}), mT[1])

	col, err := m.GetCol(2)
	require.NoError(t, err)
	assert.Equal(t, NewVector([]float64{3, 6}), col)
	_, err = m.GetCol(3)
	assert.ErrorIs(t, err, ErrSize)

	assert.Equal(t, NewVector([]float64{1, 2, 3, 4, 5, 6}), m.Flatten())

	d := m.Dense()
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, d.At(1, 2))
}

func TestMatrix_CopyDetached(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Copy()
	c[0][0] = 100
	assert.Equal(t, 1.0, m[0][0])
}

func TestMatrix_CovarianceFixture(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	cov, err := m.Covariance()
	require.NoError(t, err)
	assert.Equal(t, 4.0, cov.At(0, 0))
	assert.Equal(t, 4.0, cov.At(0, 1))
	assert.Equal(t, 4.0, cov.At(1, 1))

	_, err = Matrix{}.Covariance()
	assert.ErrorIs(t, err, ErrSize)
}

func TestNewRandomMatrix(t *testing.T) {
	gen, err := dist.NewUniform(-0.5, 0, 1, 42)
	require.NoError(t, err)

	m := NewRandomMatrix(50, 4, gen)
	assert.Equal(t, 50, m.Rows())
	assert.Equal(t, 4, m.Cols())
	for _, row := range m {
		for _, x := range row {
			assert.GreaterOrEqual(t, x, 0.0)
			assert.Less(t, x, 1.0)
		}
	}
}

func TestNewConstantMatrix(t *testing.T) {
	m := NewConstantMatrix(2, 3, 7)
	assert.Equal(t, NewVector([]float64{7, 7, 7}), m[1])
	assert.Equal(t, "7 7 7\n7 7 7", m.String())
}

// Each row of a sequence matrix holds whole pairs, so the column
// covariance across many rows recovers the block structure of the
// pairing: unit variances, the configured correlation inside each pair,
// nothing across pairs.
func TestNewSequenceMatrix_PairCovariance(t *testing.T) {
	gen, err := dist.NewNormal(-0.5, 0, 1, 42)
	require.NoError(t, err)

	m, err := NewSequenceMatrix(6000, 4, pair.Zip, true, gen)
	require.NoError(t, err)

	cov, err := m.Covariance()
	require.NoError(t, err)

	want := [][]float64{
		{1, -0.5, 0, 0},
		{-0.5, 1, 0, 0},
		{0, 0, 1, -0.5},
		{0, 0, -0.5, 1},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want[i][j], cov.At(i, j), 0.1, "entry (%d, %d)", i, j)
		}
	}
}

func TestNewSequenceMatrix_PropagatesErrors(t *testing.T) {
	gen, err := pair.NewGenerator(0, 42)
	require.NoError(t, err)

	_, err = NewSequenceMatrix(2, 0, pair.Zip, true, gen)
	assert.ErrorIs(t, err, pair.ErrCount)
}
