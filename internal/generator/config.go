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
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/models"
	"gitlab.eurecom.fr/open-exposure/coresim/trace-generator/internal/trace"
)

var validate = validator.New()

type AppConfig struct {
	OutputPath  string         `yaml:"outputPath" validate:"required"`
	EventCount  int            `yaml:"eventCount" validate:"gte=1"`
	NodeCount   int            `yaml:"nodeCount" validate:"gte=2"`
	Seed        uint64         `yaml:"seed"`
	Weights     *WeightsConfig `yaml:"weights" validate:"required"`
	MetricsFile string         `yaml:"metricsFile"`
	Api         ApiConfig      `yaml:"api"`
}

// WeightsConfig lists the class probabilities. They are always drawn in
// the order critical, bulk, standard.
type WeightsConfig struct {
	Critical float64 `yaml:"critical" json:"critical" validate:"gte=0,lte=1"`
	Bulk     float64 `yaml:"bulk" json:"bulk" validate:"gte=0,lte=1"`
	Standard float64 `yaml:"standard" json:"standard" validate:"gte=0,lte=1"`
}

type ApiConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    uint16 `yaml:"port" validate:"required_if=Enabled true"`
	Http2   bool   `yaml:"http2"`
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		OutputPath: trace.DefaultOutputPath,
		EventCount: trace.DefaultEventCount,
		NodeCount:  trace.DefaultNodeCount,
		Weights:    DefaultWeights(),
		Api: ApiConfig{
			Enabled: false,
			Port:    8082,
			Http2:   true,
		},
	}
}

func DefaultWeights() *WeightsConfig {
	return &WeightsConfig{Critical: 0.1, Bulk: 0.5, Standard: 0.4}
}

// Table returns the draw table in bracket order.
func (w *WeightsConfig) Table() []models.ClassWeight {
	return []models.ClassWeight{
		{Class: models.Critical, Probability: w.Critical},
		{Class: models.Bulk, Probability: w.Bulk},
		{Class: models.Standard, Probability: w.Standard},
	}
}

func (w *WeightsConfig) Validate() error {
	if err := validate.Struct(w); err != nil {
		return err
	}
	if sum := w.Critical + w.Bulk + w.Standard; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

func (cfg *AppConfig) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	return cfg.Weights.Validate()
}

// LoadConfig reads a YAML file on top of the defaults. An empty path
// returns the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	return cfg, nil
}

func InitConfig(configPath string) *AppConfig {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	return cfg
}

func (cfg *AppConfig) Options() trace.Options {
	return trace.Options{
		EventCount: cfg.EventCount,
		NodeCount:  cfg.NodeCount,
		Weights:    cfg.Weights.Table(),
		Seed:       cfg.Seed,
	}
}

func (cfg *AppConfig) Dumps() string {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	return string(d)
}
