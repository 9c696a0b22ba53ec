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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "traffic_trace.txt", cfg.OutputPath)
	assert.Equal(t, 100, cfg.EventCount)
	assert.Equal(t, 5, cfg.NodeCount)
	assert.Equal(t, []models.ClassWeight{
		{Class: models.Critical, Probability: 0.1},
		{Class: models.Bulk, Probability: 0.5},
		{Class: models.Standard, Probability: 0.4},
	}, cfg.Weights.Table())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
outputPath: /tmp/factory.txt
eventCount: 20
nodeCount: 3
seed: 99
weights:
  critical: 0.2
  bulk: 0.4
api:
  enabled: true
  port: 9000
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/factory.txt", cfg.OutputPath)
	assert.Equal(t, 20, cfg.EventCount)
	assert.Equal(t, 3, cfg.NodeCount)
	assert.EqualValues(t, 99, cfg.Seed)
	assert.Equal(t, 0.2, cfg.Weights.Critical)
	assert.Equal(t, 0.4, cfg.Weights.Standard)
	assert.True(t, cfg.Api.Enabled)
	assert.EqualValues(t, 9000, cfg.Api.Port)
	assert.True(t, cfg.Api.Http2)

	opts := cfg.Options()
	assert.Equal(t, 20, opts.EventCount)
	assert.Equal(t, 3, opts.NodeCount)
	assert.EqualValues(t, 99, opts.Seed)

	assert.Contains(t, cfg.Dumps(), "outputPath: /tmp/factory.txt")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "eventCount: [1, 2"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(cfg *AppConfig){
		"one node":       func(cfg *AppConfig) { cfg.NodeCount = 1 },
		"no events":      func(cfg *AppConfig) { cfg.EventCount = 0 },
		"no output":      func(cfg *AppConfig) { cfg.OutputPath = "" },
		"missing weight": func(cfg *AppConfig) { cfg.Weights = nil },
		"weights sum":    func(cfg *AppConfig) { cfg.Weights.Standard = 0.3 },
		"weight range":   func(cfg *AppConfig) { cfg.Weights = &WeightsConfig{Critical: 1.5, Bulk: -0.5, Standard: 0} },
		"api port":       func(cfg *AppConfig) { cfg.Api.Enabled = true; cfg.Api.Port = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())

			_, err := NewTraceGeneratorApp(cfg)
			assert.Error(t, err)
		})
	}
}
