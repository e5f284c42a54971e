package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the YAML level format. Map uses the same characters as text
// maps; an explicit Spawn wins over a marker in the map.
type Document struct {
	Name  string `yaml:"name" json:"name,omitempty" jsonschema:"description=Display name shown in menus"`
	Spawn *Point `yaml:"spawn,omitempty" json:"spawn,omitempty" jsonschema:"description=Player start tile"`
	Map   string `yaml:"map" json:"map" jsonschema:"required,description=Character map: # is a wall and P marks the spawn"`
}

// DecodeYAML reads a YAML level document.
func DecodeYAML(data []byte, cellSize int) (Decoded, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Decoded{}, fmt.Errorf("parse level: %w", err)
	}
	if doc.Map == "" {
		return Decoded{}, errors.New("level has no map")
	}

	d, err := DecodeText([]byte(doc.Map), cellSize)
	if err != nil {
		return Decoded{}, err
	}
	d.Name = doc.Name
	if doc.Spawn != nil {
		d.Spawn = doc.Spawn
	}
	return d, nil
}
