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

// Package dist provides antithetic generators for concrete marginal
// distributions.
//
// Every variant owns a pair.Generator and maps its raw standard normal
// stream onto the target marginal, translating the correlation requested
// for the marginal values into the normal-level correlation that realizes
// it. Normal, Uniform and Exponential cover the common cases; InverseCDF
// accepts an arbitrary quantile function as the extension point for
// further marginals.
package dist
