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

// TraceEvent is a single transmission of the synthetic trace.
type TraceEvent struct {
	Timestamp   float64 // seconds since trace start
	Source      int
	Destination int
	SizeBytes   int
	Class       TrafficClass
}

// Line formats the event as "<time> <src> <dst> <size> <tag>\n".
func (e TraceEvent) Line() string {
	return fmt.Sprintf("%.2f %d %d %d %d\n", e.Timestamp, e.Source, e.Destination, e.SizeBytes, int(e.Class))
}
