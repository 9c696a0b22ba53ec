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

import (
	"fmt"
	"strings"
)

type ClassStats struct {
	NumOfEvents int64 `json:"events"`
	TotalBytes  int64 `json:"bytes"`
}

// TraceStats accumulates counters while a trace is written.
type TraceStats struct {
	NumOfEvents   int64                        `json:"events"`
	TotalBytes    int64                        `json:"bytes"`
	Redraws       int64                        `json:"endpointRedraws"`
	LastTimestamp float64                      `json:"lastTimestamp"`
	PerClass      map[TrafficClass]*ClassStats `json:"-"`
}

func NewTraceStats() *TraceStats {
	return &TraceStats{
		PerClass: map[TrafficClass]*ClassStats{
			Critical: {},
			Standard: {},
			Bulk:     {},
		},
	}
}

func (stats *TraceStats) NewEvent(ev TraceEvent, redraws int) {
	stats.NumOfEvents++
	stats.TotalBytes += int64(ev.SizeBytes)
	stats.Redraws += int64(redraws)
	stats.LastTimestamp = ev.Timestamp

	cs, ok := stats.PerClass[ev.Class]
	if !ok {
		cs = &ClassStats{}
		stats.PerClass[ev.Class] = cs
	}
	cs.NumOfEvents++
	cs.TotalBytes += int64(ev.SizeBytes)
}

// ByName returns the per class counters keyed by class name.
func (stats *TraceStats) ByName() map[string]ClassStats {
	out := make(map[string]ClassStats, len(stats.PerClass))
	for c, cs := range stats.PerClass {
		out[c.String()] = *cs
	}
	return out
}

func (stats *TraceStats) Dumps() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Events:   %d,\nBytes:    %d,\nDuration: %.2f s,\nRedraws:  %d,\n",
		stats.NumOfEvents, stats.TotalBytes, stats.LastTimestamp, stats.Redraws)
	for _, c := range []TrafficClass{Critical, Standard, Bulk} {
		cs := stats.PerClass[c]
		fmt.Fprintf(&b, "%-9s %d events, %d bytes,\n", c.String()+":", cs.NumOfEvents, cs.TotalBytes)
	}
	return b.String()
}
