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

// Package pair implements the correlated pairing engine underneath all
// antithetic generators.
//
// Package pair provides the Generator type, a stream of standard normal
// values in which every sequentially generated pair shares a configurable
// correlation while distinct pairs remain independent. Negatively
// correlated (antithetic) pairs reduce the variance of Monte Carlo mean
// estimates; positively correlated (common) pairs serve the comparison of
// two simulated systems under like conditions.
//
// The package also provides the seeding machinery shared by the generator
// variants: a deterministic Salsa20-backed source and spawnable seed
// sequences for reproducible yet independent parallel streams.
package pair
