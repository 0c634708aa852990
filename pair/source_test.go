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
	"golang.org/x/exp/rand"
)

func TestSalsa20Source_Deterministic(t *testing.T) {
	a, err := NewSource(7)
	require.NoError(t, err)
	b, err := NewSource(7)
	require.NoError(t, err)

	// enough draws to cross several key-stream refills
	for i := 0; i < 200; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	c, err := NewSource(8)
	require.NoError(t, err)
	d, err := NewSource(7)
	require.NoError(t, err)
	assert.NotEqual(t, d.Uint64(), c.Uint64())
}

func TestSalsa20Source_SeedResets(t *testing.T) {
	src, err := NewSource(1)
	require.NoError(t, err)
	salsa, ok := src.(*Salsa20Source)
	require.True(t, ok)

	salsa.Uint64()
	salsa.Seed(42)

	want, err := NewSource(42)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, want.Uint64(), salsa.Uint64())
	}
}

func TestNewSource_AutoSeeds(t *testing.T) {
	a, err := NewSource()
	require.NoError(t, err)
	b, err := NewSource()
	require.NoError(t, err)

	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestSalsa20Source_Uniformity(t *testing.T) {
	src, err := NewSource(3)
	require.NoError(t, err)
	rng := rand.New(src)

	n := 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rng.Float64()
	}

	assert.InDelta(t, 0.5, sum/float64(n), 0.01)
}
