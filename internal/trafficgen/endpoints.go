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

// PickEndpoints draws a source and a destination uniformly in [0, nodeCount)
// and redraws the destination until it differs from the source.
// nodeCount must be at least 2, otherwise the loop never ends.
func PickEndpoints(rng RandSource, nodeCount int) (src, dst, redraws int) {
	src = rng.IntN(nodeCount)
	dst = rng.IntN(nodeCount)
	for dst == src {
		redraws++
		dst = rng.IntN(nodeCount)
	}
	return src, dst, redraws
}
