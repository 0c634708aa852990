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
	"math"

	"gonum.org/v1/gonum/mat"
)

// BivariateCovariance returns the 2x2 covariance matrix of a unit-variance
// pair with the given correlation.
func BivariateCovariance(rho float64) (*mat.SymDense, error) {
	if err := checkCorrelation(rho); err != nil {
		return nil, err
	}

	return mat.NewSymDense(2, []float64{
		1, rho,
		rho, 1,
	}), nil
}

// BivariateRoot returns the lower triangular square root A of the
// bivariate covariance matrix, A * A^T = BivariateCovariance(rho). Its
// second row holds the pair mixing weights, so A applied to a vector of
// two independent standard normals yields one correlated pair.
func BivariateRoot(rho float64) (*mat.TriDense, error) {
	if err := checkCorrelation(rho); err != nil {
		return nil, err
	}

	return mat.NewTriDense(2, mat.Lower, []float64{
		1, 0,
		rho, math.Sqrt(1 - rho*rho),
	}), nil
}
