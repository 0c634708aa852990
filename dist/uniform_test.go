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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/xlab-si/antithetic/pair"
)

func TestNewUniform_InvalidArguments(t *testing.T) {
	_, err := NewUniform(0, 3, 3, testSeed)
	assert.ErrorIs(t, err, ErrRange)
	_, err = NewUniform(-2, 0, 1, testSeed)
	assert.ErrorIs(t, err, pair.ErrCorrelation)
	_, err = NewUniform(math.NaN(), 0, 1, testSeed)
	assert.ErrorIs(t, err, pair.ErrCorrelation)
}

func TestUniform_SwapsDescendingBounds(t *testing.T) {
	d, err := NewUniform(0, 6, 2, testSeed)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d.Low())
	assert.Equal(t, 6.0, d.High())
	assert.Equal(t, 4.0, d.Range())
}

func TestUniform_Moments(t *testing.T) {
	d, err := NewUniform(-0.75, 2, 6, testSeed)
	require.NoError(t, err)

	assert.Equal(t, 4.0, d.Mean())
	assert.InDelta(t, 4/math.Sqrt(12), d.StdDev(), 1e-12)
	assert.InDelta(t, 16.0/12, d.Variance(), 1e-12)
	assert.InDelta(t, -0.75, d.Correlation(), 1e-12)
}

func TestUniform_ValuesInRange(t *testing.T) {
	d, err := NewUniform(-0.9, -1, 1, testSeed)
	require.NoError(t, err)

	values, err := d.Sequence(20000, pair.Zip, true)
	require.NoError(t, err)
	for _, v := range values {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
	assert.InDelta(t, 0, stat.Mean(values, nil), 0.02)
}

func TestUniform_RealizedCorrelation(t *testing.T) {
	tests := []struct {
		name string
		corr float64
	}{
		{"extreme", -1},
		{"strong", -0.75},
		{"moderate", -0.5},
		{"common", 0.8},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := NewUniform(test.corr, 0, 1, testSeed)
			require.NoError(t, err)

			firsts, seconds := pairedSamples(t, d, 20000)
			assert.InDelta(t, test.corr, stat.Correlation(firsts, seconds, nil), 0.03)
			assert.InDelta(t, 0, stat.Correlation(seconds[:len(seconds)-1], firsts[1:], nil), 0.04)
		})
	}
}

func TestUniform_SetRangeKeepsRawBuffer(t *testing.T) {
	d, err := NewUniform(-0.5, 0, 1, testSeed)
	require.NoError(t, err)
	twin, err := NewUniform(-0.5, 0, 1, testSeed)
	require.NoError(t, err)

	assert.Equal(t, twin.Next(), d.Next())

	// descending bounds are swapped here as well
	require.NoError(t, d.SetRange(10, 6))
	assert.Equal(t, 6.0, d.Low())
	assert.Equal(t, 10.0, d.High())
	assert.ErrorIs(t, d.SetRange(3, 3), ErrRange)

	// the buffered raw partner survives the marginal change
	u := twin.Next()
	assert.Equal(t, 4*u+6, d.Next())
}

func TestUniform_SetCorrelation(t *testing.T) {
	d, err := NewUniform(-0.5, 0, 1, testSeed)
	require.NoError(t, err)

	require.NoError(t, d.SetCorrelation(0.25))
	assert.InDelta(t, 0.25, d.Correlation(), 1e-12)

	assert.ErrorIs(t, d.SetCorrelation(1.5), pair.ErrCorrelation)
	assert.InDelta(t, 0.25, d.Correlation(), 1e-12)
}

func TestUniform_SetCorrelationDiscardsRawBuffer(t *testing.T) {
	d, err := NewUniform(-0.5, 0, 1, testSeed)
	require.NoError(t, err)
	twin, err := NewUniform(-0.5, 0, 1, testSeed)
	require.NoError(t, err)

	assert.Equal(t, twin.Next(), d.Next())

	require.NoError(t, d.SetCorrelation(-0.5))
	assert.NotEqual(t, twin.Next(), d.Next())
}
