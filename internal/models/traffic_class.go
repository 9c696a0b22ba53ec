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

package models

import "fmt"

// TrafficClass is the priority tag carried by every trace event.
// Its integer value is the tag code written in the trace file.
type TrafficClass int

const (
	Critical TrafficClass = iota // ambulance: small, frequent
	Standard
	Bulk // cargo truck: large, sparse
)

func (c TrafficClass) String() string {
	switch c {
	case Critical:
		return "Critical"
	case Standard:
		return "Standard"
	case Bulk:
		return "Bulk"
	default:
		return fmt.Sprintf("TrafficClass(%d)", int(c))
	}
}

// Valid reports whether c is one of the three known classes.
func (c TrafficClass) Valid() bool {
	return c >= Critical && c <= Bulk
}

// ClassProfile holds the fixed transmission parameters of a class.
type ClassProfile struct {
	Class     TrafficClass
	SizeBytes int     // payload size
	Interval  float64 // seconds added to the trace clock
}

// ClassWeight is one bracket of the class draw. Brackets are evaluated
// in slice order against a cumulative sum of probabilities.
type ClassWeight struct {
	Class       TrafficClass
	Probability float64
}

var profiles = map[TrafficClass]ClassProfile{
	Critical: {Class: Critical, SizeBytes: 512, Interval: 0.1},
	Standard: {Class: Standard, SizeBytes: 1024, Interval: 0.5},
	Bulk:     {Class: Bulk, SizeBytes: 4096, Interval: 1.0},
}

// Profile returns the fixed profile of c.
func Profile(c TrafficClass) (ClassProfile, bool) {
	p, ok := profiles[c]
	return p, ok
}

// DefaultClassWeights returns the draw table Critical, Bulk, Standard
// (cumulative bounds 0.1 and 0.6). The order is part of the output
// distribution and must not be sorted.
func DefaultClassWeights() []ClassWeight {
	return []ClassWeight{
		{Class: Critical, Probability: 0.10},
		{Class: Bulk, Probability: 0.50},
		{Class: Standard, Probability: 0.40},
	}
}
