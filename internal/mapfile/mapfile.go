// Package mapfile writes generated dungeons to YAML for inspection and for
// loading into other tools.
package mapfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wanigame/wanirogue/internal/dungeon"
)

// ErrBadDocument is returned by Read when a file's contents do not match
// its declared size.
var ErrBadDocument = errors.New("mapfile: inconsistent map document")

// FileName is the name Write uses inside the output directory.
const FileName = "dungeon.yaml"

// Document is the on-disk form of a generated map.
type Document struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Seed     int64      `yaml:"seed"`
	TileSize int        `yaml:"tile_size"`
	Rooms    []RoomYAML `yaml:"rooms"`
	Rows     []string   `yaml:"rows"`
	Render   [][]int    `yaml:"render"`
}

// RoomYAML is a placed room: top-left cell and size in cells, so the
// last cell is (X+W-1, Y+H-1).
type RoomYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// orderedDocument keeps the render grid in flow style, one row per line.
type orderedDocument struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Seed     int64      `yaml:"seed"`
	TileSize int        `yaml:"tile_size"`
	Rooms    []RoomYAML `yaml:"rooms"`
	Rows     []string   `yaml:"rows"`
	Render   yaml.Node  `yaml:"render"`
}

// FromMap converts a generated map into its Document form.
func FromMap(m *dungeon.Map, seed int64) *Document {
	doc := &Document{
		Width:    m.Width,
		Height:   m.Height,
		Seed:     seed,
		TileSize: m.TileSize,
		Rooms:    make([]RoomYAML, 0, len(m.Rooms)),
		Rows:     m.Rows(),
		Render:   make([][]int, m.Height),
	}

	for _, r := range m.Rooms {
		doc.Rooms = append(doc.Rooms, RoomYAML{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}

	for y := 0; y < m.Height; y++ {
		row := make([]int, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x], _ = m.RenderIndexAt(x, y)
		}
		doc.Render[y] = row
	}

	return doc
}

// Encode writes doc as YAML with a short header comment.
func Encode(w io.Writer, doc *Document) error {
	fmt.Fprintf(w, "# Generated dungeon: %dx%d grid\n", doc.Width, doc.Height)
	fmt.Fprintf(w, "# Rooms: %d\n\n", len(doc.Rooms))

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	ordered := &orderedDocument{
		Width:    doc.Width,
		Height:   doc.Height,
		Seed:     doc.Seed,
		TileSize: doc.TileSize,
		Rooms:    doc.Rooms,
		Rows:     doc.Rows,
		Render:   renderNode(doc.Render),
	}

	if err := encoder.Encode(ordered); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// Write encodes doc to <dir>/dungeon.yaml, creating dir if needed, and
// returns the file path.
func Write(dir string, doc *Document) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, doc); err != nil {
		return "", err
	}
	return path, f.Close()
}

// Read loads a Document written by Write.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &doc, nil
}

// validate checks rows and render against the declared size.
func (d *Document) validate() error {
	if len(d.Rows) != d.Height {
		return fmt.Errorf("%w: %d rows for height %d", ErrBadDocument, len(d.Rows), d.Height)
	}
	g, err := d.Grid()
	if err != nil {
		return err
	}
	if g.Width != d.Width {
		return fmt.Errorf("%w: rows have width %d, want %d", ErrBadDocument, g.Width, d.Width)
	}
	if len(d.Render) != d.Height {
		return fmt.Errorf("%w: %d render rows for height %d", ErrBadDocument, len(d.Render), d.Height)
	}
	for y, row := range d.Render {
		if len(row) != d.Width {
			return fmt.Errorf("%w: render row %d has width %d, want %d", ErrBadDocument, y, len(row), d.Width)
		}
	}
	return nil
}

// Grid rebuilds the cell grid from the stored rows.
func (d *Document) Grid() (*dungeon.Grid, error) {
	return dungeon.ParseRows(d.Rows)
}

// renderNode builds a block sequence of flow-style rows.
func renderNode(render [][]int) yaml.Node {
	node := yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range render {
		rowNode := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, idx := range row {
			rowNode.Content = append(rowNode.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.Itoa(idx),
			})
		}
		node.Content = append(node.Content, rowNode)
	}
	return node
}
