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
	"fmt"

	"github.com/pkg/errors"
)

// Method selects how a generated sequence is arranged from its correlated
// pairs. The arrangement never changes which values are generated, only
// where the members of each pair end up.
type Method int

const (
	// Zip interleaves the pairs so both members sit at consecutive
	// positions, matching the order of repeated single draws.
	Zip Method = iota
	// Shuffle places all first members before all second members and
	// then randomly permutes the result.
	Shuffle
	// Concatenate places all first members before all second members.
	Concatenate
)

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case Zip:
		return "zip"
	case Shuffle:
		return "shuffle"
	case Concatenate:
		return "concatenate"
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod maps the names "zip", "shuffle" and "concatenate" onto their
// Method values.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "zip":
		return Zip, nil
	case "shuffle":
		return Shuffle, nil
	case "concatenate":
		return Concatenate, nil
	}

	return 0, errors.Wrapf(ErrMethod, "cannot parse %q", name)
}

func (m Method) known() bool {
	return m == Zip || m == Shuffle || m == Concatenate
}
