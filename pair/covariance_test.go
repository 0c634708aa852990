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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBivariateCovariance(t *testing.T) {
	cov, err := BivariateCovariance(-0.5)
	require.NoError(t, err)

	want := mat.NewSymDense(2, []float64{
		1, -0.5,
		-0.5, 1,
	})
	assert.True(t, mat.Equal(cov, want))

	_, err = BivariateCovariance(-2)
	assert.ErrorIs(t, err, ErrCorrelation)
}

func TestBivariateRoot(t *testing.T) {
	for _, rho := range []float64{-1, -0.5, 0, 0.3, 1} {
		root, err := BivariateRoot(rho)
		require.NoError(t, err)

		var prod mat.Dense
		prod.Mul(root, root.T())

		cov, err := BivariateCovariance(rho)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(&prod, cov, 1e-12))
	}

	_, err := BivariateRoot(1.01)
	assert.ErrorIs(t, err, ErrCorrelation)
}
