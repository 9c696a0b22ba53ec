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
	"errors"
	"fmt"
	"math"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
)

var (
	ErrInvalidWeights = errors.New("invalid class weights")
	ErrTooFewNodes    = errors.New("node count must be at least 2")
)

const weightTolerance = 1e-9

// ClassSelector maps a uniform draw to a traffic class using cumulative
// brackets in table order.
type ClassSelector struct {
	table []models.ClassWeight
}

func NewClassSelector(weights []models.ClassWeight) (*ClassSelector, error) {
	if len(weights) != 3 {
		return nil, fmt.Errorf("%w: expected 3 entries, got %d", ErrInvalidWeights, len(weights))
	}

	seen := make(map[models.TrafficClass]bool, len(weights))
	sum := 0.0
	for _, w := range weights {
		if !w.Class.Valid() {
			return nil, fmt.Errorf("%w: unknown class %s", ErrInvalidWeights, w.Class)
		}
		if seen[w.Class] {
			return nil, fmt.Errorf("%w: class %s listed twice", ErrInvalidWeights, w.Class)
		}
		seen[w.Class] = true
		if w.Probability < 0 || w.Probability > 1 || math.IsNaN(w.Probability) {
			return nil, fmt.Errorf("%w: probability %v for %s out of [0,1]", ErrInvalidWeights, w.Probability, w.Class)
		}
		sum += w.Probability
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return nil, fmt.Errorf("%w: probabilities sum to %v", ErrInvalidWeights, sum)
	}

	table := make([]models.ClassWeight, len(weights))
	copy(table, weights)
	return &ClassSelector{table: table}, nil
}

// Next returns the class whose bracket contains u.
func (s *ClassSelector) Next(u float64) models.TrafficClass {
	cumulative := 0.0
	for _, w := range s.table {
		cumulative += w.Probability
		if u < cumulative {
			return w.Class
		}
	}
	// rounding left u above the last bound
	return s.table[len(s.table)-1].Class
}
