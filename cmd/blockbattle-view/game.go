package main

import (
	"fmt"
	"image/color"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockbattle/match"
	"github.com/plus3/blockbattle/match/debugui"
	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/rules"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	cellSize     = 24
	boardTop     = 60
	boardGap     = 320
	boardLeft    = 80
)

var cellColors = map[rules.Cell]color.RGBA{
	rules.KindCell(piece.I): {0x31, 0xc7, 0xef, 0xff},
	rules.KindCell(piece.O): {0xf7, 0xd3, 0x08, 0xff},
	rules.KindCell(piece.T): {0xad, 0x4d, 0x9c, 0xff},
	rules.KindCell(piece.S): {0x42, 0xb6, 0x42, 0xff},
	rules.KindCell(piece.Z): {0xef, 0x20, 0x29, 0xff},
	rules.KindCell(piece.J): {0x5a, 0x65, 0xad, 0xff},
	rules.KindCell(piece.L): {0xef, 0x79, 0x21, 0xff},
	rules.Garbage:           {0x70, 0x70, 0x70, 0xff},
}

var (
	backgroundColor = color.RGBA{0x18, 0x18, 0x20, 0xff}
	gridColor       = color.RGBA{0x30, 0x30, 0x3a, 0xff}
	garbageBarColor = color.RGBA{0xd0, 0x30, 0x30, 0xff}
)

// Game implements ebiten.Game on top of the match scheduler, with the debug
// panels drawn as an ImGui overlay.
type Game struct {
	match     *match.Match
	scheduler *match.Scheduler
	panels    *debugui.PanelSystem
	backend   *ebitenbackend.EbitenBackend
	human     bool
}

func (g *Game) Update() error {
	g.backend.BeginFrame()

	if g.human && !g.match.Over() && !g.panels.Input.WantCaptureKeyboard {
		handleKeys(g.match.Players[0].Engine)
	}
	g.scheduler.Once(1.0 / 60.0)

	g.backend.EndFrame()
	return nil
}

func handleKeys(e *rules.Engine) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		e.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		e.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyX):
		e.Rotate(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		e.Rotate(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyC), inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft):
		e.Hold()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		e.HardDropAndSpawn()
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		e.SoftDrop()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for i, p := range g.match.Players {
		drawPlayer(screen, p, float64(boardLeft+i*boardGap))
	}
	if g.match.Over() {
		msg := "draw"
		if w := g.match.Player(g.match.Winner()); w != nil {
			msg = w.Name + " wins"
		}
		ebitenutil.DebugPrintAt(screen, msg, boardLeft, 20)
	}

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func drawPlayer(screen *ebiten.Image, p *match.Player, left float64) {
	e := p.Engine
	b := e.Board()
	w, h := b.Width(), b.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := left+float64(x*cellSize), float64(boardTop+y*cellSize)
			ebitenutil.DrawRect(screen, cx, cy, cellSize, cellSize, gridColor)
			if c, ok := cellColors[b.At(x, y)]; ok {
				ebitenutil.DrawRect(screen, cx+1, cy+1, cellSize-2, cellSize-2, c)
			}
		}
	}

	if a := e.Active(); a.Kind.Valid() && !e.ToppedOut() {
		if shape, ok := piece.ShapeOf(a.Kind, a.Rotation); ok {
			c := cellColors[rules.KindCell(a.Kind)]
			for _, cell := range shape {
				x, y := a.X+cell.X, a.Y+cell.Y
				if y < 0 {
					continue
				}
				ebitenutil.DrawRect(screen, left+float64(x*cellSize)+1, float64(boardTop+y*cellSize)+1, cellSize-2, cellSize-2, c)
			}
		}
	}

	if pending := min(e.PendingGarbage(), h); pending > 0 {
		bar := float64(pending * cellSize)
		ebitenutil.DrawRect(screen, left-8, float64(boardTop+h*cellSize)-bar, 5, bar, garbageBarColor)
	}

	side := left + float64(w*cellSize) + 12
	drawMini(screen, e.Held(), side, boardTop)
	for i, k := range e.Queue() {
		drawMini(screen, k, side, float64(boardTop+70+i*50))
	}

	c := e.Counters()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  pieces %d  lines %d  sent %d",
		p.Name, c.PiecesPlaced, c.LinesCleared, c.AttacksSent), int(left), boardTop+h*cellSize+8)
}

// drawMini draws kind at half size with its box's top-left at (left, top).
func drawMini(screen *ebiten.Image, kind piece.Kind, left, top float64) {
	shape, ok := piece.ShapeOf(kind, 0)
	if !ok {
		return
	}
	const mini = cellSize / 2
	c := cellColors[rules.KindCell(kind)]
	for _, cell := range shape {
		ebitenutil.DrawRect(screen, left+float64(cell.X*mini), top+float64(cell.Y*mini), mini-1, mini-1, c)
	}
}
