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

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// sourceBufLen is the number of key-stream bytes generated per refill.
const sourceBufLen = 512

// Salsa20Source is a deterministic rand.Source reading the Salsa20 key
// stream: blocks of the cipher applied to an all-zero input, with the
// running block counter as the nonce. The same 32 byte key always
// reproduces the same stream. The zero value is not usable; construct
// sources through NewSource or SeedSequence.Source.
type Salsa20Source struct {
	key     [32]byte
	counter uint64
	buf     [sourceBufLen]byte
	idx     int
}

// NewSource returns a deterministic source for the given seed words. When
// called without arguments the source is keyed from operating system
// entropy. Seed expansion goes through SeedSequence, so NewSource(words...)
// and NewSeedSequence(words...).Source() yield identical streams.
func NewSource(seed ...uint64) (rand.Source, error) {
	seq, err := NewSeedSequence(seed...)
	if err != nil {
		return nil, err
	}

	return seq.Source(), nil
}

func newSalsa20Source(key [32]byte) *Salsa20Source {
	return &Salsa20Source{key: key, idx: sourceBufLen}
}

// Seed resets the source to the stream determined by a single seed word.
// The word passes through the same expansion as NewSource(seed), so
// sources seeded either way agree.
func (s *Salsa20Source) Seed(seed uint64) {
	seq := SeedSequence{entropy: []uint64{seed}}
	s.key = seq.Key()
	s.counter = 0
	s.idx = sourceBufLen
}

// Uint64 returns the next 8 key-stream bytes as an unsigned integer.
func (s *Salsa20Source) Uint64() uint64 {
	if s.idx >= sourceBufLen {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.idx:])
	s.idx += 8

	return v
}

// refill encrypts the next all-zero block. The nonce is the block counter,
// so successive refills continue a single deterministic key stream.
func (s *Salsa20Source) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.counter)
	s.counter++

	for i := range s.buf {
		s.buf[i] = 0
	}
	salsa20.XORKeyStream(s.buf[:], s.buf[:], nonce[:], &s.key)
	s.idx = 0
}
