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

package main

import (
	"flag"
	"log"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/generator"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	outputPath := flag.String("o", "", "Trace file to create or overwrite")
	eventCount := flag.Int("n", 0, "Number of events in the trace")
	nodeCount := flag.Int("nodes", 0, "Number of nodes in the simulated topology")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	metricsFile := flag.String("metrics-file", "", "Write prometheus metrics to this file after the run")
	checkPath := flag.String("check", "", "Verify the structure of an existing trace and exit")
	serve := flag.Bool("serve", false, "Serve the trace generator API instead of writing a file")

	flag.Parse()

	cfg := generator.InitConfig(*configPath)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.OutputPath = *outputPath
		case "n":
			cfg.EventCount = *eventCount
		case "nodes":
			cfg.NodeCount = *nodeCount
		case "seed":
			cfg.Seed = *seed
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		case "serve":
			cfg.Api.Enabled = *serve
		}
	})

	app, err := generator.NewTraceGeneratorApp(cfg)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	if *checkPath != "" {
		n, err := app.CheckTrace(*checkPath)
		if err != nil {
			log.Fatalf("trace %s is not valid: %v", *checkPath, err)
		}
		log.Printf("trace %s is valid: %d events", *checkPath, n)
		return
	}

	app.Run()
}
