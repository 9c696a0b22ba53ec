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

package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
)

var (
	TracesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "traces_generated_total",
			Help: "Number of traces generated",
		},
	)

	TraceEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trace_events_total",
			Help: "Trace events generated by traffic class",
		},
		[]string{"traceId", "class"},
	)

	TraceBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trace_bytes_total",
			Help: "Payload bytes generated by traffic class",
		},
		[]string{"traceId", "class"},
	)

	EndpointRedraws = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trace_endpoint_redraws_total",
			Help: "Destination draws rejected because they matched the source",
		},
		[]string{"traceId"},
	)

	TraceDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trace_duration_seconds",
			Help: "Virtual time covered by the trace",
		},
		[]string{"traceId"},
	)
)

func init() {
	prometheus.MustRegister(TracesTotal, TraceEvents, TraceBytes, EndpointRedraws, TraceDuration)
}

// RecordTrace publishes the counters of a finished trace.
func RecordTrace(traceId string, stats *models.TraceStats) {
	TracesTotal.Inc()
	for class, cs := range stats.PerClass {
		TraceEvents.WithLabelValues(traceId, class.String()).Add(float64(cs.NumOfEvents))
		TraceBytes.WithLabelValues(traceId, class.String()).Add(float64(cs.TotalBytes))
	}
	EndpointRedraws.WithLabelValues(traceId).Add(float64(stats.Redraws))
	TraceDuration.WithLabelValues(traceId).Set(stats.LastTimestamp)
}

// WriteTextfile dumps the default registry in the node exporter textfile
// format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
