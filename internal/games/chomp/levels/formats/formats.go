// Package formats decodes level files into grids. Each decoder takes the raw
// file contents and the cell size to build the grid with.
package formats

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/chomp/internal/games/chomp/maze"
)

// Point is a tile coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Decoded is the result of decoding one level file.
type Decoded struct {
	Name  string
	Grid  *maze.Grid
	Spawn *Point // nil when the file does not place the player
}

// Decoder turns file contents into a level.
type Decoder func(data []byte, cellSize int) (Decoded, error)

var decoders = map[string]Decoder{
	".txt":  DecodeText,
	".yaml": DecodeYAML,
	".yml":  DecodeYAML,
	".png":  DecodeImage,
}

// ForPath returns the decoder for a file based on its extension.
func ForPath(path string) (Decoder, bool) {
	d, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return d, ok
}

// Extensions returns the supported file extensions, sorted.
func Extensions() []string {
	return slices.Sorted(maps.Keys(decoders))
}
