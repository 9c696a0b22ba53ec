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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrafficClassCodes(t *testing.T) {
	assert.Equal(t, 0, int(Critical))
	assert.Equal(t, 1, int(Standard))
	assert.Equal(t, 2, int(Bulk))

	assert.Equal(t, "Critical", Critical.String())
	assert.Equal(t, "Standard", Standard.String())
	assert.Equal(t, "Bulk", Bulk.String())
	assert.Equal(t, "TrafficClass(9)", TrafficClass(9).String())
	assert.False(t, TrafficClass(-1).Valid())
}

func TestProfiles(t *testing.T) {
	want := map[TrafficClass][2]float64{
		Critical: {512, 0.1},
		Standard: {1024, 0.5},
		Bulk:     {4096, 1.0},
	}
	for class, w := range want {
		p, ok := Profile(class)
		require.True(t, ok)
		assert.Equal(t, class, p.Class)
		assert.Equal(t, int(w[0]), p.SizeBytes)
		assert.Equal(t, w[1], p.Interval)
	}

	_, ok := Profile(TrafficClass(3))
	assert.False(t, ok)
}

func TestDefaultClassWeightsOrder(t *testing.T) {
	weights := DefaultClassWeights()
	require.Len(t, weights, 3)
	assert.Equal(t, []TrafficClass{Critical, Bulk, Standard},
		[]TrafficClass{weights[0].Class, weights[1].Class, weights[2].Class})

	// callers get their own copy
	weights[0].Probability = 1
	assert.Equal(t, 0.10, DefaultClassWeights()[0].Probability)
}

func TestTraceEventLine(t *testing.T) {
	ev := TraceEvent{Timestamp: 1.5, Source: 0, Destination: 4, SizeBytes: 512, Class: Critical}
	assert.Equal(t, "1.50 0 4 512 0\n", ev.Line())

	ev = TraceEvent{Timestamp: 12.346, Source: 3, Destination: 1, SizeBytes: 4096, Class: Bulk}
	assert.Equal(t, "12.35 3 1 4096 2\n", ev.Line())
}

func TestTraceStats(t *testing.T) {
	stats := NewTraceStats()
	stats.NewEvent(TraceEvent{Timestamp: 0.1, SizeBytes: 512, Class: Critical}, 1)
	stats.NewEvent(TraceEvent{Timestamp: 0.6, SizeBytes: 1024, Class: Standard}, 0)
	stats.NewEvent(TraceEvent{Timestamp: 1.6, SizeBytes: 4096, Class: Bulk}, 2)

	assert.EqualValues(t, 3, stats.NumOfEvents)
	assert.EqualValues(t, 5632, stats.TotalBytes)
	assert.EqualValues(t, 3, stats.Redraws)
	assert.Equal(t, 1.6, stats.LastTimestamp)

	byName := stats.ByName()
	assert.EqualValues(t, 1, byName["Bulk"].NumOfEvents)
	assert.EqualValues(t, 4096, byName["Bulk"].TotalBytes)

	dump := stats.Dumps()
	assert.Contains(t, dump, "Events:   3,")
	assert.Contains(t, dump, "Duration: 1.60 s,")
	assert.Contains(t, dump, "Critical: 1 events, 512 bytes,")
}
