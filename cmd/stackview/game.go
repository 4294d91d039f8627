package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stackdrop/grid"
	debugui_ebiten "github.com/plus3/stackdrop/grid/debugui/ebiten"
	"github.com/plus3/stackdrop/internal/config"
	"github.com/plus3/stackdrop/notation"
	"github.com/plus3/stackdrop/render"
	"github.com/plus3/stackdrop/replay"
	"go.uber.org/zap"
)

const statusHeight = 48

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	emptyColor      = color.RGBA{40, 40, 52, 255}
	gridLineColor   = color.RGBA{60, 60, 75, 255}
)

// Game implements ebiten.Game. It replays one puzzle, dropping a shape every
// TicksPerMove updates.
type Game struct {
	cfg     config.ViewConfig
	palette []color.RGBA
	logger  *zap.Logger

	player *replay.Player
	paint  *render.Paint
	ticks  int
	paused bool

	overlay *debugui_ebiten.Overlay
}

func NewGame(cfg config.ViewConfig, moves []notation.Move, logger *zap.Logger) (*Game, error) {
	palette := make([]color.RGBA, len(cfg.Palette))
	for i, hex := range cfg.Palette {
		c, err := parseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		palette[i] = c
	}

	g := &Game{
		cfg:     cfg,
		palette: palette,
		logger:  logger,
		paint:   &render.Paint{},
	}
	g.player = replay.NewPlayer(moves, g.paint.Apply, g.logLanding)
	return g, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

func (g *Game) logLanding(l grid.Landing) {
	g.logger.Debug("landing",
		zap.Stringer("shape", l.Shape),
		zap.Int("column", l.Column),
		zap.Int("row", l.Placement.Bottom()),
		zap.Ints("cleared", l.ClearedRows),
		zap.Int("height", l.Height))
}

// ScreenSize returns the size of the board area in pixels.
func (g *Game) ScreenSize() (int, int) {
	return grid.Width * g.cfg.CellSize, g.cfg.VisibleRows*g.cfg.CellSize + statusHeight
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.overlay.Update()
		if g.overlay.WantsInput() {
			return nil
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.step()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	}

	if g.paused {
		return nil
	}
	g.ticks++
	if g.ticks >= g.cfg.TicksPerMove {
		g.ticks = 0
		g.step()
	}
	return nil
}

func (g *Game) step() {
	if _, ok := g.player.Step(); !ok && g.player.Err() != nil && !g.paused {
		g.logger.Error("replay stopped", zap.Error(g.player.Err()))
		g.paused = true
	}
}

func (g *Game) restart() {
	g.player.Restart()
	g.paint.Reset()
	if g.overlay != nil {
		g.overlay.Inspector.Reset()
	}
	g.ticks = 0
	g.paused = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	board := g.player.Grid()
	cell := float32(g.cfg.CellSize)
	rows := g.cfg.VisibleRows
	// Keep the top of the stack on screen once it grows past the window.
	base := max(0, board.Height()-rows+2)

	for row := 0; row < rows; row++ {
		y := base + row
		sy := float32(statusHeight) + float32(rows-1-row)*cell
		for x := 0; x < grid.Width; x++ {
			sx := float32(x) * cell
			c := emptyColor
			if s, ok := g.paint.ShapeAt(x, y); ok {
				c = g.palette[s]
			}
			vector.DrawFilledRect(screen, sx, sy, cell, cell, c, false)
			vector.StrokeRect(screen, sx, sy, cell, cell, 1, gridLineColor, false)
		}
	}

	next, total := g.player.Position()
	status := fmt.Sprintf("move %d/%d  height %d  cleared %d", next, total, board.Height(), board.Cleared())
	if base > 0 {
		status += fmt.Sprintf("  rows %d+", base)
	}
	if err := g.player.Err(); err != nil {
		status += "\n" + err.Error()
	} else if g.paused {
		status += "\npaused (space: resume, right: step, r: restart)"
	}
	ebitenutil.DebugPrint(screen, status)

	if g.overlay != nil {
		g.overlay.DrawOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.ScreenSize()
}
