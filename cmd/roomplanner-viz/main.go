// Command roomplanner-viz renders the full planning pipeline — rampart
// cut, exposure cost matrix, and building layout — over a synthetic room
// in a tcell terminal screen. Grounded on the teacher's direct tcell.Screen
// usage in main.go and render/terminal_renderer.go (SetContent/Show loop,
// RGB styles), with go-colorful driving the exposure heat gradient and
// go-runewidth measuring the legend text.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
	"github.com/bestkurisu/screeps-room-planner/layout"
	"github.com/bestkurisu/screeps-room-planner/mincut"
)

func main() {
	logger := log.New(os.Stderr, "roomplanner-viz: ", 0)

	walls := buildWalls()
	terrain := func(x, y int) int {
		if walls[core.Point{X: x, Y: y}] {
			return 1
		}
		return 0
	}

	sources := []core.Point{{X: 8, Y: 8}, {X: 42, Y: 40}}
	mineral := core.Point{X: 6, Y: 44}
	controller := core.Point{X: 25, Y: 6}

	protected := append([]core.Point{}, sources...)
	protected = append(protected, mineral, controller)

	rampart, cost, err := mincut.Calculate(terrain, protected, controller, logger)
	if err != nil {
		log.Fatalf("mincut.Calculate: %v", err)
	}

	record, err := layout.BuildLayout(
		terrain, straightLinePathFinder, noLookup, discardMemory{},
		toResources("source", sources), toResource("mineral", mineral), toResource("controller", controller),
		logger,
	)
	if err != nil {
		logger.Printf("layout.BuildLayout: %v (showing partial layout)", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("tcell.NewScreen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen.Init: %v", err)
	}
	defer screen.Fini()

	rampartSet := make(map[core.Point]bool, len(rampart))
	for _, p := range rampart {
		rampartSet[p] = true
	}

	draw(screen, walls, cost, rampartSet, record)
	drawLegend(screen)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func draw(screen tcell.Screen, walls map[core.Point]bool, cost *mincut.CostMatrix, rampart map[core.Point]bool, record *layout.LayoutRecord) {
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			p := core.Point{X: x, Y: y}
			switch {
			case walls[p]:
				screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
			case rampart[p]:
				screen.SetContent(x, y, 'R', nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
			default:
				style := tcell.StyleDefault.Background(heatColor(cost.Get(x, y)))
				screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}

	drawKind(screen, record, layout.Storage, 'S', tcell.ColorYellow)
	drawKind(screen, record, layout.Lab, 'L', tcell.ColorPurple)
	drawKind(screen, record, layout.Tower, 'T', tcell.ColorOrange)
	drawKind(screen, record, layout.Extension, 'E', tcell.ColorLightGreen)
	drawKind(screen, record, layout.Observer, 'O', tcell.ColorBlue)
	drawKind(screen, record, layout.Link, 'K', tcell.ColorAqua)
	drawKind(screen, record, layout.Container, 'C', tcell.ColorWhite)
	drawKind(screen, record, layout.Road, '.', tcell.ColorSilver)
}

func drawKind(screen tcell.Screen, record *layout.LayoutRecord, kind layout.StructureKind, r rune, color tcell.Color) {
	for _, p := range record.Get(kind) {
		screen.SetContent(p.X, p.Y, r, nil, tcell.StyleDefault.Foreground(color))
	}
}

// heatColor blends from cool blue (cost 0) to hot red (cost 255) in HSV
// space via go-colorful, matching the exposure cost matrix's 0..255 range.
func heatColor(cost byte) tcell.Color {
	t := float64(cost) / 255.0
	cool := colorful.Hsv(220, 0.6, 0.25)
	hot := colorful.Hsv(0, 0.9, 0.9)
	blended := cool.BlendHsv(hot, t)
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawLegend(screen tcell.Screen) {
	lines := []string{
		"R rampart  S storage  L lab  T tower  E extension",
		"O observer  K link  C container  . road  █ wall",
	}
	for i, line := range lines {
		x := 0
		for _, r := range line {
			screen.SetContent(x, grid.Size+i, r, nil, tcell.StyleDefault)
			x += runewidth.RuneWidth(r)
		}
	}
}

func buildWalls() map[core.Point]bool {
	walls := make(map[core.Point]bool)
	for x := 15; x <= 35; x++ {
		walls[core.Point{X: x, Y: 20}] = true
		walls[core.Point{X: x, Y: 35}] = true
	}
	for y := 20; y <= 35; y++ {
		walls[core.Point{X: 15, Y: y}] = true
		walls[core.Point{X: 35, Y: y}] = true
	}
	delete(walls, core.Point{X: 25, Y: 20})
	return walls
}

func noLookup(x, y int) []host.Occupant { return nil }

type discardMemory struct{}

func (discardMemory) Set(key, value string) {}

func toResource(id string, p core.Point) layout.Resource {
	return layout.Resource{ID: id, Pos: p}
}

func toResources(prefix string, pts []core.Point) []layout.Resource {
	out := make([]layout.Resource, len(pts))
	for i, p := range pts {
		out[i] = layout.Resource{ID: fmt.Sprintf("%s%d", prefix, i+1), Pos: p}
	}
	return out
}

// straightLinePathFinder is a stand-in for the host's real A* path-finder:
// it walks diagonally from start toward goal, stopping opts.Range tiles
// short, ignoring terrain entirely. Grounded on layout_test.go's test
// double of the same shape.
func straightLinePathFinder(start, goal core.Point, opts host.PathOptions) []core.Point {
	path := []core.Point{start}
	cur := start
	for chebyshev(cur, goal) > opts.Range {
		cur = core.Point{X: cur.X + sign(goal.X-cur.X), Y: cur.Y + sign(goal.Y-cur.Y)}
		path = append(path, cur)
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func chebyshev(a, b core.Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
