package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wanigame/wanirogue/internal/dungeon"
	"github.com/wanigame/wanirogue/internal/mapfile"
)

func main() {
	inputFile := flag.String("input", "data/dungeon/"+mapfile.FileName, "Path to dungeon.yaml file")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showSprites := flag.Bool("sprites", false, "Show the sprite index of each wall cell")
	showLegend := flag.Bool("legend", true, "Show legend")
	flag.Parse()

	doc, err := mapfile.Read(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading map: %v\n", err)
		os.Exit(1)
	}

	g, err := doc.Grid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing map: %v\n", err)
		os.Exit(1)
	}

	var output strings.Builder
	render(&output, doc, g, *showSprites)
	if *showLegend {
		output.WriteString(getLegend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}

func render(output *strings.Builder, doc *mapfile.Document, g *dungeon.Grid, sprites bool) {
	output.WriteString(fmt.Sprintf("Dungeon Map (Seed: %d, %dx%d, Rooms: %d)\n", doc.Seed, doc.Width, doc.Height, len(doc.Rooms)))
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	writeConnectivity(output, g)

	if sprites {
		renderSprites(output, doc)
	} else {
		for _, row := range g.Rows() {
			output.WriteString(row)
			output.WriteString("\n")
		}
	}
	output.WriteString("\n")

	if len(doc.Rooms) > 0 {
		output.WriteString("Rooms:\n")
		for i, r := range doc.Rooms {
			output.WriteString(fmt.Sprintf("  %2d. at (%d,%d) size %dx%d\n", i+1, r.X, r.Y, r.W, r.H))
		}
		output.WriteString("\n")
	}
}

// writeConnectivity reports disconnected regions and leftover dead ends.
func writeConnectivity(output *strings.Builder, g *dungeon.Grid) {
	regions := g.OpenRegions()
	if len(regions) > 1 {
		output.WriteString(fmt.Sprintf("WARNING: %d disconnected regions detected!\n", len(regions)))
		for i, region := range regions {
			output.WriteString(fmt.Sprintf("  - region %d: %d cells from %s\n", i+1, len(region), region[0]))
		}
	} else {
		output.WriteString("All open cells are connected.\n")
	}

	if ends := g.DeadEnds(); len(ends) > 0 {
		output.WriteString(fmt.Sprintf("WARNING: %d dead ends detected!\n", len(ends)))
		for _, p := range ends {
			output.WriteString(fmt.Sprintf("  - %s\n", p))
		}
	}
	output.WriteString("\n")
}

// renderSprites prints wall cells as two-digit sprite indices and open
// cells as blanks.
func renderSprites(output *strings.Builder, doc *mapfile.Document) {
	for _, row := range doc.Render {
		for x, idx := range row {
			if x > 0 {
				output.WriteString(" ")
			}
			if idx == dungeon.PlaceholderTile {
				output.WriteString("  ")
			} else {
				output.WriteString(fmt.Sprintf("%02d", idx))
			}
		}
		output.WriteString("\n")
	}
}

func getLegend() string {
	return `
Legend:
  [#] Wall
  [+] Corridor
  [.] Room

  Sprite mode:
  NN  Sprite sheet index of a wall cell
      Open cell (placeholder sprite)
`
}
