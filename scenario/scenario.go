// Package scenario loads named obstacle-field fixtures from YAML files, for
// use by tests, benchmarks, and the visual package's demo program.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridpath-dev/gridpath"
	"github.com/gridpath-dev/gridpath/geom"
)

// Cell is a single lattice point in the flat form scenario files use; it
// carries the lowercase yaml tags that geom.Pos does not have.
type Cell struct {
	X int `yaml:"x"`
	Z int `yaml:"z"`
}

// Scenario is a named obstacle field plus a default start/end query, loaded
// from a YAML fixture file.
type Scenario struct {
	Name    string `yaml:"name"`
	Blocked []Cell `yaml:"blocked"`
	Start   Cell   `yaml:"start"`
	End     Cell   `yaml:"end"`
}

// Load reads and parses a Scenario from a YAML file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}
	return &s, nil
}

// Positions converts the scenario's blocked cells to geom.Pos values.
func (s *Scenario) Positions() []geom.Pos {
	out := make([]geom.Pos, len(s.Blocked))
	for i, c := range s.Blocked {
		out[i] = geom.Pos{X: c.X, Z: c.Z}
	}
	return out
}

// StartPos returns the scenario's default query start as a geom.Pos.
func (s *Scenario) StartPos() geom.Pos {
	return geom.Pos{X: s.Start.X, Z: s.Start.Z}
}

// EndPos returns the scenario's default query end as a geom.Pos.
func (s *Scenario) EndPos() geom.Pos {
	return geom.Pos{X: s.End.X, Z: s.End.Z}
}

// NewMap builds and precomputes a *gridpath.Map from the scenario's blocked
// cells, ready for FindPath(s.StartPos(), s.EndPos()) or any other query.
func (s *Scenario) NewMap(opts ...gridpath.Option) *gridpath.Map {
	m := gridpath.New(opts...)
	m.AddObjects(s.Positions()...)
	m.Precompute()
	return m
}
