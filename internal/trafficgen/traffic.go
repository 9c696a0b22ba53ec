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

package trafficgen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
)

// RandSource is the random stream consumed by the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// NewSource returns a PCG backed source. A zero seed is replaced by the
// current time so that unseeded runs differ.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator produces trace events on a virtual clock. It is not safe for
// concurrent use; build one per trace.
type Generator struct {
	rng         RandSource
	selector    *ClassSelector
	nodeCount   int
	currentTime float64

	lastRedraws int
}

// NewGenerator creates a generator drawing endpoints in [0, nodeCount)
func NewGenerator(rng RandSource, weights []models.ClassWeight, nodeCount int) (*Generator, error) {
	if rng == nil {
		return nil, fmt.Errorf("trafficgen: nil random source")
	}
	if nodeCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewNodes, nodeCount)
	}
	selector, err := NewClassSelector(weights)
	if err != nil {
		return nil, err
	}
	return &Generator{
		rng:       rng,
		selector:  selector,
		nodeCount: nodeCount,
	}, nil
}

// NextEvent draws the class, advances the clock by the class interval and
// draws a distinct source/destination pair.
func (g *Generator) NextEvent() models.TraceEvent {
	class := g.selector.Next(g.rng.Float64())
	profile, _ := models.Profile(class)

	g.currentTime += profile.Interval

	src, dst, redraws := PickEndpoints(g.rng, g.nodeCount)
	g.lastRedraws = redraws

	return models.TraceEvent{
		Timestamp:   g.currentTime,
		Source:      src,
		Destination: dst,
		SizeBytes:   profile.SizeBytes,
		Class:       class,
	}
}

// LastRedraws is the number of rejected destinations of the last event.
func (g *Generator) LastRedraws() int {
	return g.lastRedraws
}

// CurrentTime returns the trace clock in seconds.
func (g *Generator) CurrentTime() float64 {
	return g.currentTime
}
