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
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/rand"

	"github.com/xlab-si/antithetic/internal/entropy"
)

// entropyWords is the number of entropy words collected when a seed
// sequence is created without explicit seed material.
const entropyWords = 4

// SeedSequence expands user supplied seed words into key material for
// deterministic sources. Sequences holding different entropy, or created
// on different spawn paths, key unrelated streams, so a simulation can be
// reproduced from a handful of integers while its sub-streams stay
// independent of each other.
type SeedSequence struct {
	entropy  []uint64
	spawnKey []uint64
	children int
}

// NewSeedSequence returns a seed sequence over the given entropy words.
// When called without arguments the entropy is read from the operating
// system.
func NewSeedSequence(words ...uint64) (*SeedSequence, error) {
	if len(words) == 0 {
		var err error
		words, err = entropy.Words(entropyWords)
		if err != nil {
			return nil, errors.Wrap(err, "cannot create seed sequence")
		}
	}

	s := &SeedSequence{entropy: make([]uint64, len(words))}
	copy(s.entropy, words)

	return s, nil
}

// Entropy returns a copy of the entropy words held by the sequence.
// Together with the spawn path they fully determine the keyed stream.
func (s *SeedSequence) Entropy() []uint64 {
	words := make([]uint64, len(s.entropy))
	copy(words, s.entropy)

	return words
}

// Key derives the 32 byte stream key determined by the entropy and the
// spawn path. The words are serialized with length prefixes and digested
// with BLAKE2b-256, so sequences differing in any word, or only in their
// spawn ancestry, produce unrelated keys.
func (s *SeedSequence) Key() [32]byte {
	buf := make([]byte, 0, 8*(2+len(s.entropy)+len(s.spawnKey)))
	buf = appendWords(buf, s.entropy)
	buf = appendWords(buf, s.spawnKey)

	return blake2b.Sum256(buf)
}

// Spawn returns n child sequences whose streams are independent of the
// parent's and of each other's. Subsequent calls continue the numbering,
// so spawning twice never hands out the same child again.
func (s *SeedSequence) Spawn(n int) []*SeedSequence {
	children := make([]*SeedSequence, n)
	for i := range children {
		child := &SeedSequence{
			entropy:  s.Entropy(),
			spawnKey: make([]uint64, len(s.spawnKey), len(s.spawnKey)+1),
		}
		copy(child.spawnKey, s.spawnKey)
		child.spawnKey = append(child.spawnKey, uint64(s.children))
		s.children++

		children[i] = child
	}

	return children
}

// Source returns a deterministic source keyed by this sequence.
func (s *SeedSequence) Source() rand.Source {
	return newSalsa20Source(s.Key())
}

func appendWords(buf []byte, words []uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(words)))
	buf = append(buf, b[:]...)
	for _, w := range words {
		binary.LittleEndian.PutUint64(b[:], w)
		buf = append(buf, b[:]...)
	}

	return buf
}
