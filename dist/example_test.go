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

package dist_test

import (
	"fmt"

	"github.com/xlab-si/antithetic/data"
	"github.com/xlab-si/antithetic/dist"
	"github.com/xlab-si/antithetic/pair"
)

// ExampleNormal estimates a mean with perfectly antithetic Gaussian
// pairs: the members of each pair cancel, so every pair average hits the
// true mean.
func ExampleNormal() {
	gen, err := dist.NewNormal(-1, 0, 1, 2026)
	if err != nil {
		panic(err)
	}

	values, err := gen.Sequence(10000, pair.Zip, true)
	if err != nil {
		panic(err)
	}

	pairs, err := data.NewVector(values).Pairs()
	if err != nil {
		panic(err)
	}

	spread := 0.0
	for _, p := range pairs {
		if avg := (p[0] + p[1]) / 2; avg > spread {
			spread = avg
		} else if -avg > spread {
			spread = -avg
		}
	}
	fmt.Println(spread < 1e-9)
	// Output: true
}

// ExampleUniform checks the two correlations that define the stream: the
// one within pairs and the absent one across pairs.
func ExampleUniform() {
	gen, err := dist.NewUniform(-0.75, 0, 1, 7)
	if err != nil {
		panic(err)
	}

	values, err := gen.Sequence(20000, pair.Zip, true)
	if err != nil {
		panic(err)
	}

	firsts, seconds := data.NewVector(values).Deinterleave()
	within, err := data.Correlation(firsts, seconds)
	if err != nil {
		panic(err)
	}
	across, err := data.Correlation(seconds[:len(seconds)-1], firsts[1:])
	if err != nil {
		panic(err)
	}

	fmt.Printf("within-pair correlation close to -0.75: %t\n", within > -0.8 && within < -0.7)
	fmt.Printf("across-pair correlation close to 0: %t\n", across > -0.05 && across < 0.05)
	// Output:
	// within-pair correlation close to -0.75: true
	// across-pair correlation close to 0: true
}

// ExampleExponential compares two service rates under common random
// numbers: identically seeded streams expose every draw of the slower
// configuration to the same luck as the faster one.
func ExampleExponential() {
	slow, err := dist.NewExponentialRate(1, 0, 1, 99)
	if err != nil {
		panic(err)
	}
	fast, err := dist.NewExponentialRate(1, 0, 1.25, 99)
	if err != nil {
		panic(err)
	}

	diff := 0.0
	for i := 0; i < 10000; i++ {
		diff += slow.Next() - fast.Next()
	}
	fmt.Printf("slow minus fast mean positive: %t\n", diff > 0)
	// Output: slow minus fast mean positive: true
}

// ExampleSeedSequence hands every parallel replication its own
// independent stream while the whole experiment stays reproducible from
// one root seed.
func ExampleSeedSequence() {
	root, err := pair.NewSeedSequence(2026)
	if err != nil {
		panic(err)
	}

	children := root.Spawn(2)
	a, err := dist.NewNormalSource(-0.5, 0, 1, children[0].Source())
	if err != nil {
		panic(err)
	}
	b, err := dist.NewNormalSource(-0.5, 0, 1, children[1].Source())
	if err != nil {
		panic(err)
	}

	fmt.Println(a.Next() != b.Next())
	// Output: true
}
