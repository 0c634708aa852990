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

import "math"

// The relation between the correlation of a standard normal pair and the
// correlation of the uniform pair obtained through the normal CDF has the
// closed form given by Cario and Nelson, Modeling and generating random
// vectors with arbitrary marginal distributions and correlation matrix,
// 1997.

// UniformCorrelationToRaw returns the normal-level correlation at which a
// CDF-transformed pair attains the requested uniform-level correlation.
func UniformCorrelationToRaw(c float64) float64 {
	return 2 * math.Sin(math.Pi*c/6)
}

// RawCorrelationToUniform returns the uniform-level correlation attained
// by a CDF-transformed pair with the given normal-level correlation. It is
// the inverse of UniformCorrelationToRaw.
func RawCorrelationToUniform(raw float64) float64 {
	return 6 / math.Pi * math.Asin(raw/2)
}
