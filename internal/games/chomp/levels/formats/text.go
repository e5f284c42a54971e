package formats

import (
	"strings"

	"github.com/vovakirdan/chomp/internal/games/chomp/maze"
)

// SpawnMarker marks the player's start tile in text maps. The tile is open.
const SpawnMarker = 'P'

// DecodeText reads a character map: '#' is a wall, anything else is open.
// The first SpawnMarker in row-major order becomes the spawn point.
func DecodeText(data []byte, cellSize int) (Decoded, error) {
	rows := splitRows(string(data))
	return Decoded{
		Grid:  maze.FromRows(rows, cellSize),
		Spawn: findSpawn(rows),
	}, nil
}

func splitRows(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	return strings.Split(text, "\n")
}

func findSpawn(rows []string) *Point {
	for y, row := range rows {
		if x := strings.IndexRune(row, SpawnMarker); x >= 0 {
			return &Point{X: x, Y: y}
		}
	}
	return nil
}
