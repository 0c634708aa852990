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

import "github.com/pkg/errors"

// Errors returned when a variant is configured with impossible
// parameters.
var (
	ErrScale             = errors.New("scale parameter must be positive")
	ErrRange             = errors.New("degenerate range: low and high coincide")
	ErrQuantile          = errors.New("quantile function must not be nil")
	ErrDirectCorrelation = errors.New("exponential-level correlation has no closed-form transform")
)
