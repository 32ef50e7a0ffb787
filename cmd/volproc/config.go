package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-volume/processor"
)

// processorConfig describes one processor in a YAML file:
//
//	kind: lucy-richardson
//	options:
//	  rad: 2.5
//	  niter: 10
//	  deconvolve: true
type processorConfig struct {
	Kind    string         `yaml:"kind"`
	Options map[string]any `yaml:"options"`
}

func loadConfig(path string) (*processorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*processorConfig, error) {
	cfg := &processorConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if strings.TrimSpace(cfg.Kind) == "" {
		return nil, fmt.Errorf("parse config: missing processor kind")
	}
	return cfg, nil
}

// applySets merges key=value pairs into cfg. Values are decoded as YAML
// scalars, so "2" is an int, "2.5" a float and "true" a bool.
func (cfg *processorConfig) applySets(sets []string) error {
	if cfg.Options == nil && len(sets) > 0 {
		cfg.Options = make(map[string]any, len(sets))
	}
	for _, set := range sets {
		key, raw, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid --set %q: want key=value", set)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return fmt.Errorf("invalid --set %q: %w", set, err)
		}
		cfg.Options[key] = value
	}
	return nil
}

func (cfg *processorConfig) build() (processor.Processor, error) {
	return processor.Global.New(cfg.Kind, processor.Options(cfg.Options))
}
