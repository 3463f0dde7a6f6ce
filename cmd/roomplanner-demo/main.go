// Command roomplanner-demo is a stdio sandbox for the min-cut driver: it
// prompts for a protected tile and an optional wall rectangle, runs
// mincut.GetCutTiles over a synthetic room, and prints the result as an
// ASCII grid. Grounded on cmd/maze-generator's bufio prompt loop and
// block-glyph rendering.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/mincut"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	logger := log.New(os.Stderr, "roomplanner-demo: ", 0)

	for {
		fmt.Println("\n=== MINIMUM RAMPART CUT DEMO ===")

		px := getInt(reader, "Protected tile X (default 25): ", 25)
		py := getInt(reader, "Protected tile Y (default 25): ", 25)

		fmt.Print("Add a wall rectangle (format x1,y1,x2,y2, blank for none): ")
		rectStr, _ := reader.ReadString('\n')
		walls := parseWallRect(strings.TrimSpace(rectStr))

		protected := []core.Point{{X: px, Y: py}}
		cut, err := mincut.GetCutTiles(wallTerrain(walls), protected, nil, logger)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Printf("Cut size: %d tiles\n", len(cut))
		draw(walls, protected, cut)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func wallTerrain(walls map[core.Point]bool) func(x, y int) int {
	return func(x, y int) int {
		if walls[core.Point{X: x, Y: y}] {
			return 1
		}
		return 0
	}
}

func parseWallRect(s string) map[core.Point]bool {
	walls := make(map[core.Point]bool)
	if s == "" {
		return walls
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return walls
	}
	x1, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	y1, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	x2, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
	y2, _ := strconv.Atoi(strings.TrimSpace(parts[3]))
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if grid.InBounds(x, y) {
				walls[core.Point{X: x, Y: y}] = true
			}
		}
	}
	return walls
}

func draw(walls map[core.Point]bool, protected, cut []core.Point) {
	protectedSet := make(map[core.Point]bool, len(protected))
	for _, p := range protected {
		protectedSet[p] = true
	}
	cutSet := make(map[core.Point]bool, len(cut))
	for _, p := range cut {
		cutSet[p] = true
	}

	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			p := core.Point{X: x, Y: y}
			switch {
			case protectedSet[p]:
				fmt.Print("P")
			case cutSet[p]:
				fmt.Print("R")
			case walls[p]:
				fmt.Print("█")
			default:
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
