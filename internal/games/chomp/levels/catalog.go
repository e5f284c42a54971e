// Package levels builds the catalog of playable mazes from the built-in
// levels and an optional user directory.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/chomp/internal/core"
	"github.com/vovakirdan/chomp/internal/games/chomp/levels/formats"
	"github.com/vovakirdan/chomp/internal/games/chomp/maze"
)

//go:embed builtin
var builtinFS embed.FS

// DiagonalID is the generated debug level with walls where x == y.
const DiagonalID = "diagonal"

// Debug level size: a 448x576 window in 16px tiles, minus one.
const (
	DiagonalWidth  = 448/maze.DefaultCellSize - 1
	DiagonalHeight = 576/maze.DefaultCellSize - 1
)

// Level is a loaded maze ready to play.
type Level struct {
	Info
	Grid  *maze.Grid
	Spawn *formats.Point
}

// Info describes a level for listings.
type Info struct {
	ID     string
	Name   string
	Source string // "builtin" or the file path
	Width  int
	Height int
}

// SpawnPoint returns the player's start position in world space: the center
// of the spawn tile, or the center of the world when the level has none.
func (l Level) SpawnPoint() core.Vec2 {
	if l.Spawn != nil {
		return l.Grid.TileCenter(l.Spawn.X, l.Spawn.Y)
	}
	return l.Grid.WorldSize().Scale(0.5)
}

// Catalog is an immutable set of levels keyed by ID.
type Catalog struct {
	levels map[string]Level
}

// Load builds a catalog from the built-in levels plus every supported file
// under dir (which may be empty). A file in dir replaces a built-in level
// with the same ID.
func Load(dir string, cellSize int) (*Catalog, error) {
	c := &Catalog{levels: make(map[string]Level)}

	c.add(Level{
		Info: Info{ID: DiagonalID, Name: "Diagonal (debug)", Source: "builtin"},
		Grid: maze.Diagonal(DiagonalWidth, DiagonalHeight, cellSize),
	})

	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: builtin: %w", err)
	}
	if err := c.walk(sub, "builtin", cellSize); err != nil {
		return nil, err
	}

	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("levels: level dir: %w", err)
		}
		if err := c.walk(os.DirFS(dir), dir, cellSize); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) walk(fsys fs.FS, source string, cellSize int) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		decode, ok := formats.ForPath(p)
		if !ok {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("levels: read %s: %w", p, err)
		}
		decoded, err := decode(data, cellSize)
		if err != nil {
			return fmt.Errorf("levels: %s: %w", p, err)
		}
		if decoded.Grid.Width() == 0 || decoded.Grid.Height() == 0 {
			return fmt.Errorf("levels: %s: empty map", p)
		}

		id := levelID(p)
		name := decoded.Name
		if name == "" {
			name = id
		}
		src := source
		if source != "builtin" {
			src = path.Join(source, p)
		}

		c.add(Level{
			Info:  Info{ID: id, Name: name, Source: src},
			Grid:  decoded.Grid,
			Spawn: decoded.Spawn,
		})
		return nil
	})
}

func (c *Catalog) add(l Level) {
	l.Width = l.Grid.Width()
	l.Height = l.Grid.Height()
	c.levels[l.ID] = l
}

// levelID is the slash-separated path without its extension.
func levelID(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}

// Get returns the level with the given ID.
func (c *Catalog) Get(id string) (Level, error) {
	l, ok := c.levels[id]
	if !ok {
		return Level{}, fmt.Errorf("levels: unknown level %q", id)
	}
	return l, nil
}

// Has reports whether a level exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.levels[id]
	return ok
}

// List returns level descriptions sorted by ID.
func (c *Catalog) List() []Info {
	infos := make([]Info, 0, len(c.levels))
	for _, l := range c.levels {
		infos = append(infos, l.Info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// IDs returns the level IDs sorted.
func (c *Catalog) IDs() []string {
	infos := c.List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}
