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

package generator

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/monitoring"
	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/trace"
)

/* Trace Generator Controller code */

type TraceReport struct {
	TraceId string                       `json:"traceId"`
	Path    string                       `json:"path,omitempty"`
	Stats   *models.TraceStats           `json:"stats"`
	Classes map[string]models.ClassStats `json:"classes"`
}

type TraceGeneratorApp struct {
	config      *AppConfig
	server      *http.Server
	wg          sync.WaitGroup
	ctx         context.Context
	statusMutex sync.RWMutex
	served      int
	lastTraceId string
}

func NewTraceGeneratorApp(config *AppConfig) (*TraceGeneratorApp, error) {
	if config == nil {
		return nil, fmt.Errorf("no configuration provided, could not initialize")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &TraceGeneratorApp{
		config: config,
		wg:     sync.WaitGroup{},
	}, nil
}

// GenerateTrace writes the configured trace file and publishes its metrics.
func (app *TraceGeneratorApp) GenerateTrace() (*TraceReport, error) {
	traceId := uuid.NewString()

	stats, err := trace.GenerateTrace(app.config.Options(), app.config.OutputPath)
	if err != nil {
		return nil, err
	}

	report := app.finishTrace(traceId, stats)
	report.Path = app.config.OutputPath

	if app.config.MetricsFile != "" {
		if err := monitoring.WriteTextfile(app.config.MetricsFile); err != nil {
			log.Printf("[%s] could not write metrics file %s: %s", traceId, app.config.MetricsFile, err.Error())
		}
	}
	return report, nil
}

func (app *TraceGeneratorApp) finishTrace(traceId string, stats *models.TraceStats) *TraceReport {
	monitoring.RecordTrace(traceId, stats)

	app.statusMutex.Lock()
	app.served++
	app.lastTraceId = traceId
	app.statusMutex.Unlock()

	log.Printf("[%s] trace summary:\n%s", traceId, stats.Dumps())
	return &TraceReport{
		TraceId: traceId,
		Stats:   stats,
		Classes: stats.ByName(),
	}
}

// CheckTrace verifies the structure of an existing trace file against the
// configured node count.
func (app *TraceGeneratorApp) CheckTrace(path string) (int, error) {
	events, err := trace.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := trace.Check(events, app.config.NodeCount); err != nil {
		return len(events), err
	}
	return len(events), nil
}

func (app *TraceGeneratorApp) Status() StatusResponse {
	app.statusMutex.RLock()
	defer app.statusMutex.RUnlock()

	return StatusResponse{
		TracesServed: app.served,
		LastTraceId:  app.lastTraceId,
	}
}

// Run generates the configured trace, or serves the API until SIGINT or
// SIGTERM when it is enabled.
func (app *TraceGeneratorApp) Run() {
	log.Printf("running config: \n%s", app.config.Dumps())

	if !app.config.Api.Enabled {
		if _, err := app.GenerateTrace(); err != nil {
			log.Fatalf("could not generate trace: %s", err.Error())
		}
		return
	}

	var cancel context.CancelFunc
	app.ctx, cancel = context.WithCancel(context.Background())
	defer cancel()

	app.wg.Add(1)
	go app.listenShutdownEvent()

	app.startHttpServer()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	log.Printf("terminating...")

	cancel()
	app.wg.Wait()
}

func (app *TraceGeneratorApp) listenShutdownEvent() {
	defer app.wg.Done()

	<-app.ctx.Done()
	app.stopHttpServer()
}
