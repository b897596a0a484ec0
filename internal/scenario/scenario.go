// Package scenario holds the explicit, non-global per-k configuration value
// described in spec §9's design note: {k, universe_size, fanout, lower_bound}
// is passed around as data, never kept as package-level mutable state. The
// four production scenarios are loaded from an embedded YAML table rather
// than hardcoded constants scattered across four near-identical files.
package scenario

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

// Scenario is the configuration value for one k-core: k=14,13,12,11.
type Scenario struct {
	K            int    `yaml:"k"`
	RowSize      int    `yaml:"row_size"`
	UniverseSize int64  `yaml:"universe_size"`
	Fanout       int    `yaml:"fanout"`
	ScenarioDir  string `yaml:"scenario_dir"`
}

// LowerBound is the trivial packing bound ⌈|Uₖ| / C(15,k)⌉ (spec Glossary).
func (s Scenario) LowerBound() int64 {
	return int64(math.Ceil(float64(s.UniverseSize) / float64(s.Fanout)))
}

// LnBoundPlus1 is ln|Uₖ|+1, the classical greedy approximation bound.
func (s Scenario) LnBoundPlus1() float64 {
	return math.Log(float64(s.UniverseSize)) + 1
}

type table struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// All returns the four production scenarios, parsed fresh on every call.
func All() ([]Scenario, error) {
	var t table
	if err := yaml.Unmarshal(scenariosYAML, &t); err != nil {
		return nil, fmt.Errorf("scenario: parse embedded table: %w", err)
	}
	return t.Scenarios, nil
}

// ForK returns the scenario configuration for the given k, or an error if k
// is not one of the four registered scenarios.
func ForK(k int) (Scenario, error) {
	all, err := All()
	if err != nil {
		return Scenario{}, err
	}
	for _, s := range all {
		if s.K == k {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario: no scenario registered for k=%d", k)
}
