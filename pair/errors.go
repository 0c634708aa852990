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

import "github.com/pkg/errors"

// Errors returned when a generator is configured or queried with
// impossible arguments.
var (
	ErrCorrelation = errors.New("correlation must be in the range [-1, 1]")
	ErrCount       = errors.New("sequence length must be positive")
	ErrMethod      = errors.New("unrecognized assembly method")
)
