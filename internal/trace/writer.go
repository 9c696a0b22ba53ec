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

// Package trace writes and reads the synthetic traffic trace consumed by
// the network simulator. Each line is
//
//	<time> <sourceNode> <destNode> <size> <tagCode>
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/trafficgen"
)

const (
	DefaultEventCount = 100
	DefaultNodeCount  = 5
	DefaultOutputPath = "traffic_trace.txt"
)

// Options configures a generation pass. Zero values select the defaults.
type Options struct {
	EventCount int
	NodeCount  int
	Weights    []models.ClassWeight
	// Source overrides Seed when set.
	Source trafficgen.RandSource
	Seed   uint64
}

func (o Options) withDefaults() Options {
	if o.EventCount == 0 {
		o.EventCount = DefaultEventCount
	}
	if o.NodeCount == 0 {
		o.NodeCount = DefaultNodeCount
	}
	if o.Weights == nil {
		o.Weights = models.DefaultClassWeights()
	}
	if o.Source == nil {
		o.Source = trafficgen.NewSource(o.Seed)
	}
	return o
}

// NewGenerator validates the options and builds the event generator.
func (o Options) NewGenerator() (*trafficgen.Generator, int, error) {
	o = o.withDefaults()
	if o.EventCount < 1 {
		return nil, 0, fmt.Errorf("%w: event count %d", ErrInvalidOptions, o.EventCount)
	}
	g, err := trafficgen.NewGenerator(o.Source, o.Weights, o.NodeCount)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return g, o.EventCount, nil
}

// GenerateTrace writes a fresh trace to outputPath, truncating any
// existing file. On error the file content is undefined.
func GenerateTrace(opts Options, outputPath string) (*models.TraceStats, error) {
	g, count, err := opts.NewGenerator()
	if err != nil {
		return nil, err
	}

	log.Printf("generating %s...", outputPath)

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, &IOError{Op: "open", Path: outputPath, Err: err}
	}

	stats, err := Write(f, g, count)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = &IOError{Op: "close", Path: outputPath, Err: cerr}
	}
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = outputPath
		}
		return nil, err
	}

	log.Printf("trace file generated: %s", outputPath)
	return stats, nil
}

// Write emits count events from g to w in generation order.
func Write(w io.Writer, g *trafficgen.Generator, count int) (*models.TraceStats, error) {
	bw := bufio.NewWriter(w)
	stats := models.NewTraceStats()

	for i := 0; i < count; i++ {
		ev := g.NextEvent()
		if _, err := bw.WriteString(ev.Line()); err != nil {
			return nil, &IOError{Op: "write", Err: err}
		}
		stats.NewEvent(ev, g.LastRedraws())
	}

	if err := bw.Flush(); err != nil {
		return nil, &IOError{Op: "write", Err: err}
	}
	return stats, nil
}
