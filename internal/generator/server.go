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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/monitoring"
	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/trace"
)

// TraceRequest overrides the configured generation parameters. Zero
// fields keep the configured value.
type TraceRequest struct {
	EventCount int            `json:"eventCount" validate:"omitempty,gte=1,lte=1000000"`
	NodeCount  int            `json:"nodeCount" validate:"omitempty,gte=2"`
	Seed       uint64         `json:"seed"`
	Weights    *WeightsConfig `json:"weights" validate:"omitempty"`
}

type StatusResponse struct {
	TracesServed int    `json:"tracesServed"`
	LastTraceId  string `json:"lastTraceId,omitempty"`
}

func (app *TraceGeneratorApp) requestOptions(req *TraceRequest) (trace.Options, error) {
	if err := validate.Struct(req); err != nil {
		return trace.Options{}, err
	}

	opts := app.config.Options()
	if req.EventCount != 0 {
		opts.EventCount = req.EventCount
	}
	if req.NodeCount != 0 {
		opts.NodeCount = req.NodeCount
	}
	if req.Seed != 0 {
		opts.Seed = req.Seed
	}
	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			return trace.Options{}, err
		}
		opts.Weights = req.Weights.Table()
	}
	return opts, nil
}

func (app *TraceGeneratorApp) handleGenerateTrace(w http.ResponseWriter, r *http.Request) {
	req := &TraceRequest{}
	if r.Body != nil {
		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	opts, err := app.requestOptions(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, count, err := opts.NewGenerator()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	traceId := uuid.NewString()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Trace-Id", traceId)
	w.WriteHeader(http.StatusOK)

	stats, err := trace.Write(w, g, count)
	if err != nil {
		// headers are gone, the client sees a truncated body
		log.Printf("[%s] could not stream trace: %s", traceId, err.Error())
		return
	}
	app.finishTrace(traceId, stats)
}

func (app *TraceGeneratorApp) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(app.Status())
	if err != nil {
		http.Error(w, "could not encode response", http.StatusInternalServerError)
	}
}

// Router returns the API routes.
func (app *TraceGeneratorApp) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/trace-generator/v1/traces", app.handleGenerateTrace).Methods(http.MethodPost)
	router.HandleFunc("/trace-generator/v1/status", app.handleStatus).Methods(http.MethodGet)
	router.Handle("/metrics", monitoring.Handler())

	return router
}

func (app *TraceGeneratorApp) startHttpServer() {
	app.wg.Add(1)

	var handler http.Handler = app.Router()
	if app.config.Api.Http2 {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	app.server = &http.Server{Addr: fmt.Sprintf(":%d", app.config.Api.Port), Handler: handler}

	go func() {
		defer app.wg.Done()

		log.Printf("serving trace generator api on :%d", app.config.Api.Port)
		// always returns error. ErrServerClosed on graceful close
		if err := app.server.ListenAndServe(); err != http.ErrServerClosed {
			// unexpected error. port in use?
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
}

func (app *TraceGeneratorApp) stopHttpServer() {
	if app.server != nil {
		err := app.server.Close()
		if err != nil {
			log.Default().Printf("could not stop api server")
		}
	}
}
