package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnitTemplate holds static data for a unit type loaded from YAML.
type UnitTemplate struct {
	Type      string `yaml:"type"` // world.UnitType name, e.g. "Tank"
	HP        int32  `yaml:"hp"`
	Armor     int16  `yaml:"armor"`
	MoveSpeed int16  `yaml:"move_speed"` // tiles per wander step (0 = immobile)
	BuildCost int32  `yaml:"build_cost"`
}

// SpawnEntry defines where and how many units to place at boot.
type SpawnEntry struct {
	Type    string `yaml:"type"`
	Owner   int32  `yaml:"owner"`
	X       int32  `yaml:"x"`
	Y       int32  `yaml:"y"`
	Count   int    `yaml:"count"`
	SpreadX int32  `yaml:"spreadx"` // random placement jitter
	SpreadY int32  `yaml:"spready"`
}

type unitListFile struct {
	Units []UnitTemplate `yaml:"units"`
}

type spawnListFile struct {
	Spawns []SpawnEntry `yaml:"spawns"`
}

// UnitTable holds all unit templates indexed by type name.
type UnitTable struct {
	templates map[string]*UnitTemplate
}

// LoadUnitTable loads unit templates from a YAML file.
func LoadUnitTable(path string) (*UnitTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit_list: %w", err)
	}
	var f unitListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse unit_list: %w", err)
	}
	t := &UnitTable{templates: make(map[string]*UnitTemplate, len(f.Units))}
	for i := range f.Units {
		u := &f.Units[i]
		t.templates[u.Type] = u
	}
	return t, nil
}

// Get returns a unit template by type name, or nil if not found.
func (t *UnitTable) Get(typeName string) *UnitTemplate {
	return t.templates[typeName]
}

// Count returns the number of loaded templates.
func (t *UnitTable) Count() int {
	return len(t.templates)
}

// LoadSpawnList loads spawn entries from a YAML file.
func LoadSpawnList(path string) ([]SpawnEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn_list: %w", err)
	}
	var f spawnListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse spawn_list: %w", err)
	}
	return f.Spawns, nil
}
