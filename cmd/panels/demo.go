package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	panels "github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/config"
)

var (
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	rectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// runDemo implements the demo subcommand: it builds a sample tree, lays it
// out at the requested size and draws the result.
func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	width := fs.Int("w", 0, "Width in cells (default: terminal width)")
	height := fs.Int("h", 0, "Height in cells (default: terminal height)")
	tree := fs.Bool("tree", false, "Print the arranged tree instead of drawing it")
	configPath := fs.String("config", config.DefaultFile, "Configuration file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	w, h := 80, 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if tw, th, ok := terminalSize(); ok {
			// Leave room for the frame.
			w, h = tw-2, th-3
		}
	}
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("size %dx%d is too small", w, h)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	host, err := panels.NewHost(buildDemo(), panels.WithConfig(cfg))
	if err != nil {
		return err
	}
	host.Layout(panels.NewSize(float64(w), float64(h)))

	if *tree {
		printTree(host)
		return nil
	}
	fmt.Println(frameStyle.Render(draw(host, w, h)))
	return nil
}

// buildDemo assembles a tree that exercises most panels: a docked header,
// status line and sidebar around a two-column grid holding a wrap panel and
// a scrolled log inside a card.
func buildDemo() panels.Element {
	title := panels.NewTextBlock("go-panels demo")
	title.SetHorizontalAlignment(panels.AlignCenter)
	header := panels.NewBorder(title)
	header.SetBorderThickness(panels.Uniform(1))
	panels.SetDock(header, panels.DockTop)

	status := panels.NewTextBlock("layout ok")
	panels.SetDock(status, panels.DockBottom)

	sidebar := panels.NewStackPanel()
	for _, label := range []string{"Files", "Search", "Settings"} {
		b := panels.NewButton(label)
		b.SetBorderThickness(panels.Uniform(1))
		sidebar.Add(b)
	}
	panels.SetDock(sidebar, panels.DockLeft)

	tiles := panels.NewWrapPanel()
	for _, label := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"} {
		b := panels.NewButton(label)
		b.SetBorderThickness(panels.Uniform(1))
		tiles.Add(b)
	}
	tilesCard := panels.NewCard(tiles)
	tilesCard.SetHeader(panels.NewTextBlock("Tiles"))
	tilesCard.SetBorderThickness(panels.Uniform(1))
	tilesCard.SetPadding(panels.Symmetric(1, 0))

	log := panels.NewStackPanel()
	for i := 0; i < 40; i++ {
		log.Add(panels.NewTextBlock(fmt.Sprintf("%02d measure and arrange completed", i)))
	}
	viewer := panels.NewScrollViewer(log)
	viewer.SetHorizontalScrollBarVisibility(panels.ScrollBarDisabled)
	viewer.ScrollToBottom()
	logCard := panels.NewCard(viewer)
	logCard.SetHeader(panels.NewTextBlock("Log"))
	logCard.SetBorderThickness(panels.Uniform(1))
	logCard.SetPadding(panels.Symmetric(1, 0))
	panels.SetColumn(logCard, 1)

	grid := panels.NewGrid(tilesCard, logCard)
	grid.SetColumnDefinitions(
		panels.NewColumnDefinition(panels.MustStar(1)),
		panels.NewColumnDefinition(panels.MustStar(2)),
	)

	return panels.NewDockPanel(header, status, sidebar, grid)
}

// printTree lists every visited node with its depth and bounds.
func printTree(host *panels.Host) {
	host.Walk(func(e panels.Element, depth int) bool {
		name := strings.TrimPrefix(fmt.Sprintf("%T", e), "*panels.")
		fmt.Printf("%s%s %s\n", strings.Repeat("  ", depth), typeStyle.Render(name), rectStyle.Render(fmt.Sprint(e.Bounds())))
		return true
	})
}

// canvas is a grid of cells with a clip rectangle.
type canvas struct {
	cells [][]rune
	clip  panels.Rect
}

func newCanvas(w, h int) *canvas {
	c := &canvas{cells: make([][]rune, h), clip: panels.NewRect(0, 0, float64(w), float64(h))}
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", w))
	}
	return c
}

func (c *canvas) set(x, y int, r rune) {
	if !c.clip.Contains(float64(x)+0.5, float64(y)+0.5) {
		return
	}
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) text(x, y int, s string) {
	for _, r := range s {
		c.set(x, y, r)
		x += lipgloss.Width(string(r))
	}
}

func (c *canvas) box(r panels.Rect) {
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.Right()))-1, int(math.Round(r.Bottom()))-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─')
		c.set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│')
		c.set(x1, y, '│')
	}
	c.set(x0, y0, '┌')
	c.set(x1, y0, '┐')
	c.set(x0, y1, '└')
	c.set(x1, y1, '┘')
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// draw paints the tree in Walk order. Content of a ScrollViewer is clipped
// to its viewport.
func draw(host *panels.Host, w, h int) string {
	c := newCanvas(w, h)
	clips := []panels.Rect{c.clip}

	host.Walk(func(e panels.Element, depth int) bool {
		clips = clips[:depth+1]
		c.clip = clips[depth]
		if sv, ok := e.Parent().(*panels.ScrollViewer); ok {
			if _, isBar := e.(*panels.ScrollBar); !isBar {
				vp := sv.ViewportSize()
				c.clip = c.clip.Intersect(panels.NewRect(sv.Bounds().X, sv.Bounds().Y, vp.Width, vp.Height))
			}
		}
		paint(c, e)
		clips = append(clips, c.clip)
		return true
	})
	return c.String()
}

func paint(c *canvas, e panels.Element) {
	b := e.Bounds()
	switch v := e.(type) {
	case *panels.Border:
		if !v.BorderThickness().IsZero() {
			c.box(b)
		}
	case *panels.Card:
		if !v.BorderThickness().IsZero() {
			c.box(b)
		}
	case *panels.Button:
		if !v.BorderThickness().IsZero() {
			c.box(b)
		}
	case *panels.TextBlock:
		pad := v.Padding()
		for i, line := range v.Lines() {
			c.text(int(math.Round(b.X+pad.Left)), int(math.Round(b.Y+pad.Top))+i, line)
		}
	case *panels.ScrollBar:
		t := v.ThumbRect()
		for y := int(b.Y); y < int(math.Ceil(b.Bottom())); y++ {
			for x := int(b.X); x < int(math.Ceil(b.Right())); x++ {
				r := '░'
				if t.Contains(float64(x)+0.5, float64(y)+0.5) {
					r = '█'
				}
				c.set(x, y, r)
			}
		}
	}
}
