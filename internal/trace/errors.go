// Copyright 2025 EURECOM
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Contributors:
//   Giulio CAROTA
//   Thomas DU
//   Adlen KSENTINI

package trace

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOptions = errors.New("invalid trace options")
	ErrMalformedLine  = errors.New("malformed trace line")
	ErrInvariant      = errors.New("trace invariant violated")
)

// IOError reports a failure to open, write or close a trace destination.
type IOError struct {
	Op   string // "open", "write" or "close"
	Path string // empty for plain writers
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("trace %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("trace %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
