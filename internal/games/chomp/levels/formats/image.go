package formats

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/vovakirdan/chomp/internal/games/chomp/maze"
)

// DecodeImage reads a PNG map where each opaque blue pixel is a wall.
// Image maps carry no spawn point.
func DecodeImage(data []byte, cellSize int) (Decoded, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Decoded{}, fmt.Errorf("decode png: %w", err)
	}
	return Decoded{Grid: maze.FromImage(img, cellSize)}, nil
}
