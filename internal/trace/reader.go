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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
)

// ReadFile parses the trace stored at path.
func ReadFile(path string) ([]models.TraceEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return Read(f)
}

// Read parses one event per line.
func Read(r io.Reader) ([]models.TraceEvent, error) {
	events := []models.TraceEvent{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		ev, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return events, nil
}

func parseLine(line string) (models.TraceEvent, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 5 {
		return models.TraceEvent{}, fmt.Errorf("%w: expected 5 fields, got %d", ErrMalformedLine, len(fields))
	}

	ts, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return models.TraceEvent{}, fmt.Errorf("%w: time %q", ErrMalformedLine, fields[0])
	}

	ints := make([]int, 4)
	for i, f := range fields[1:] {
		ints[i], err = strconv.Atoi(f)
		if err != nil {
			return models.TraceEvent{}, fmt.Errorf("%w: field %d %q", ErrMalformedLine, i+2, f)
		}
	}

	return models.TraceEvent{
		Timestamp:   ts,
		Source:      ints[0],
		Destination: ints[1],
		SizeBytes:   ints[2],
		Class:       models.TrafficClass(ints[3]),
	}, nil
}

// Check verifies the structural guarantees of a generated trace: endpoints
// in range and distinct, a known (size, tag) pair, and strictly
// increasing time. It says nothing about the class distribution.
func Check(events []models.TraceEvent, nodeCount int) error {
	prev := 0.0
	for i, ev := range events {
		if ev.Source < 0 || ev.Source >= nodeCount || ev.Destination < 0 || ev.Destination >= nodeCount {
			return fmt.Errorf("%w: event %d endpoints %d->%d outside [0,%d)", ErrInvariant, i+1, ev.Source, ev.Destination, nodeCount)
		}
		if ev.Source == ev.Destination {
			return fmt.Errorf("%w: event %d is a self loop on node %d", ErrInvariant, i+1, ev.Source)
		}
		profile, ok := models.Profile(ev.Class)
		if !ok || profile.SizeBytes != ev.SizeBytes {
			return fmt.Errorf("%w: event %d has size %d with tag %d", ErrInvariant, i+1, ev.SizeBytes, int(ev.Class))
		}
		if ev.Timestamp <= prev {
			return fmt.Errorf("%w: event %d time %.2f does not follow %.2f", ErrInvariant, i+1, ev.Timestamp, prev)
		}
		prev = ev.Timestamp
	}
	return nil
}
