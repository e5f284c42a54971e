// Package sprites loads the sprite sheet: one static frame per tile kind and
// named animation strips for actors.
package sprites

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chomp/internal/core"
	"github.com/vovakirdan/chomp/internal/games/chomp/maze"
)

//go:embed defaults/sheet.yaml
var defaultSheetYAML []byte

// SpriteID names a foreground animation strip.
type SpriteID string

// Player is the only actor sprite the game needs.
const Player SpriteID = "player"

// RequiredSprites must be present in every sheet.
var RequiredSprites = []SpriteID{Player}

// Frame is one drawable cell. Rect is the source region in the sheet image
// and is kept for tools that render pixels; the terminal uses Glyph.
type Frame struct {
	Rect   core.Rect
	Glyph  rune
	Color  core.Color
	Facing map[int]rune // rotation in degrees -> glyph
}

// FacingGlyph returns the glyph for an actor rotated by rotation degrees.
// Frames without a facing table, or without an entry for the angle, use Glyph.
func (f Frame) FacingGlyph(rotation float64) rune {
	if len(f.Facing) == 0 {
		return f.Glyph
	}
	deg := int(rotation) % 360
	if deg < 0 {
		deg += 360
	}
	if g, ok := f.Facing[deg]; ok {
		return g
	}
	return f.Glyph
}

// Sheet holds the lookup tables. It is immutable after loading and may be
// shared across sessions.
type Sheet struct {
	background map[maze.TileKind]Frame
	foreground map[SpriteID][]Frame
}

// Background returns the frame drawn for a tile kind.
func (s *Sheet) Background(kind maze.TileKind) (Frame, bool) {
	f, ok := s.background[kind]
	return f, ok
}

// Foreground returns the animation strip for a sprite.
func (s *Sheet) Foreground(id SpriteID) ([]Frame, bool) {
	frames, ok := s.foreground[id]
	return frames, ok
}

// MustBackground is Background for callers that ran Validate. It panics on
// an unknown kind.
func (s *Sheet) MustBackground(kind maze.TileKind) Frame {
	f, ok := s.background[kind]
	if !ok {
		panic(fmt.Sprintf("sprites: no background for tile kind %q", kind))
	}
	return f
}

// MustForeground is Foreground for callers that ran Validate. It panics on
// an unknown sprite.
func (s *Sheet) MustForeground(id SpriteID) []Frame {
	frames, ok := s.foreground[id]
	if !ok || len(frames) == 0 {
		panic(fmt.Sprintf("sprites: no foreground sprite %q", id))
	}
	return frames
}

// Sprites returns the foreground sprite IDs in sorted order.
func (s *Sheet) Sprites() []SpriteID {
	ids := make([]SpriteID, 0, len(s.foreground))
	for id := range s.foreground {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Validate checks that every tile kind has a background frame and every
// required sprite has at least one frame.
func (s *Sheet) Validate() error {
	for _, k := range maze.TileKinds {
		if _, ok := s.background[k]; !ok {
			return fmt.Errorf("sprites: missing background for tile kind %q", k)
		}
	}
	for _, id := range RequiredSprites {
		if len(s.foreground[id]) == 0 {
			return fmt.Errorf("sprites: missing frames for sprite %q", id)
		}
	}
	return nil
}

// Default returns the embedded sheet.
func Default() (*Sheet, error) {
	return Parse(defaultSheetYAML)
}

// Load reads a sheet from path. An empty path loads the embedded default.
func Load(path string) (*Sheet, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprites: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sprites: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML sheet document.
func Parse(data []byte) (*Sheet, error) {
	var doc SheetDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sprites: parse sheet: %w", err)
	}
	return doc.build()
}

// SheetDocument is the on-disk form of a sheet.
type SheetDocument struct {
	Background map[string]FrameDocument   `yaml:"background" json:"background" jsonschema:"description=Frame per tile kind (open or wall)"`
	Foreground map[string][]FrameDocument `yaml:"foreground" json:"foreground" jsonschema:"description=Animation strips keyed by sprite id"`
}

// FrameDocument is the on-disk form of a frame.
type FrameDocument struct {
	Rect   RectDocument   `yaml:"rect" json:"rect"`
	Glyph  string         `yaml:"glyph" json:"glyph" jsonschema:"minLength=1,maxLength=4,description=Single character drawn in the terminal"`
	Color  string         `yaml:"color,omitempty" json:"color,omitempty" jsonschema:"description=Color name such as yellow or bright_blue"`
	Facing map[int]string `yaml:"facing,omitempty" json:"facing,omitempty" jsonschema:"description=Glyph override per rotation (0 90 180 270)"`
}

// RectDocument is a source rectangle in sheet pixels.
type RectDocument struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

func (d SheetDocument) build() (*Sheet, error) {
	s := &Sheet{
		background: make(map[maze.TileKind]Frame, len(d.Background)),
		foreground: make(map[SpriteID][]Frame, len(d.Foreground)),
	}

	for name, fd := range d.Background {
		kind, ok := maze.ParseTileKind(name)
		if !ok {
			return nil, fmt.Errorf("sprites: unknown tile kind %q", name)
		}
		f, err := fd.build()
		if err != nil {
			return nil, fmt.Errorf("sprites: background %s: %w", name, err)
		}
		s.background[kind] = f
	}

	for name, strip := range d.Foreground {
		frames := make([]Frame, 0, len(strip))
		for i, fd := range strip {
			f, err := fd.build()
			if err != nil {
				return nil, fmt.Errorf("sprites: %s frame %d: %w", name, i, err)
			}
			frames = append(frames, f)
		}
		s.foreground[SpriteID(name)] = frames
	}

	return s, nil
}

func (d FrameDocument) build() (Frame, error) {
	glyph, err := parseGlyph(d.Glyph)
	if err != nil {
		return Frame{}, err
	}
	color, ok := core.ParseColor(d.Color)
	if !ok {
		return Frame{}, fmt.Errorf("unknown color %q", d.Color)
	}

	f := Frame{
		Rect:  core.NewRect(d.Rect.X, d.Rect.Y, d.Rect.W, d.Rect.H),
		Glyph: glyph,
		Color: color,
	}
	if len(d.Facing) > 0 {
		f.Facing = make(map[int]rune, len(d.Facing))
		for deg, g := range d.Facing {
			r, err := parseGlyph(g)
			if err != nil {
				return Frame{}, fmt.Errorf("facing %d: %w", deg, err)
			}
			f.Facing[deg] = r
		}
	}
	return f, nil
}

func parseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
