package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tilekit/sliding-puzzle/game/engine"
)

const (
	tileSize     = 96
	tileGap      = 4
	boardMargin  = 20
	headerHeight = 60
	footerHeight = 50
)

// Tile and chrome colors
var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	boardColor      = color.RGBA{40, 40, 55, 255}
	tileColor       = color.RGBA{70, 130, 180, 255}
	tileHomeColor   = color.RGBA{60, 150, 110, 255}
	buttonColor     = color.RGBA{90, 90, 120, 255}
	overlayColor    = color.RGBA{0, 0, 0, 170}
)

// Game is the desktop shell: one embedded puzzle session driven by the
// ebiten loop. Keyboard and mouse feed the session, Tick advances it, and
// Draw renders the snapshot each frame.
type Game struct {
	session *engine.PuzzleGame

	boardX int
	boardY int
	boardW int

	screenWidth  int
	screenHeight int
}

// NewGame builds the shell around a fresh session and installs the pointer
// geometry so clicks can be routed to cells.
func NewGame(config *engine.PuzzleConfig) (*Game, error) {
	session, err := engine.NewGame(config)
	if err != nil {
		return nil, err
	}

	size := session.Grid().Size()
	boardW := size*tileSize + (size+1)*tileGap

	g := &Game{
		session:      session,
		boardX:       boardMargin,
		boardY:       headerHeight,
		boardW:       boardW,
		screenWidth:  boardW + 2*boardMargin,
		screenHeight: headerHeight + boardW + footerHeight,
	}

	session.SetCellLocator(g.locateCell)
	return g, nil
}

// locateCell maps window coordinates to a grid cell. It reports false for
// clicks on the chrome or in the gaps between tiles.
func (g *Game) locateCell(x, y float64) (engine.Cell, bool) {
	size := g.session.Grid().Size()

	localX := x - float64(g.boardX)
	localY := y - float64(g.boardY)
	if localX < 0 || localY < 0 {
		return engine.Cell{}, false
	}

	pitch := float64(tileSize + tileGap)
	col := int((localX - tileGap) / pitch)
	row := int((localY - tileGap) / pitch)
	if row < 0 || row >= size || col < 0 || col >= size {
		return engine.Cell{}, false
	}

	// Reject clicks in the gap to the right/bottom of the cell.
	cellX := float64(tileGap) + float64(col)*pitch
	cellY := float64(tileGap) + float64(row)*pitch
	if localX < cellX || localX >= cellX+tileSize || localY < cellY || localY >= cellY+tileSize {
		return engine.Cell{}, false
	}

	return engine.Cell{Row: row, Col: col}, true
}

// newGameButtonRect returns the footer button bounds.
func (g *Game) newGameButtonRect() (x, y, w, h float64) {
	w = 110
	h = 30
	x = float64(g.screenWidth) - w - boardMargin
	y = float64(g.screenHeight-footerHeight) + 10
	return
}

// Update handles one frame of input and advances the session clock.
func (g *Game) Update() error {
	// Keyboard: arrows/WASD name the direction the tile slides.
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.session.RequestMove(engine.DirUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.RequestMove(engine.DirDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.session.RequestMove(engine.DirLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.session.RequestMove(engine.DirRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Reset()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		bx, by, bw, bh := g.newGameButtonRect()
		if float64(mx) >= bx && float64(mx) < bx+bw && float64(my) >= by && float64(my) < by+bh {
			g.session.Reset()
		} else {
			g.session.RequestMoveAt(float64(mx), float64(my))
		}
	}

	g.session.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.session.Snapshot()

	g.drawHeader(screen, snap)
	g.drawBoard(screen, snap)
	g.drawFooter(screen)

	if snap.Solved {
		g.drawWinOverlay(screen, snap)
	}
}

// drawHeader shows the config name, move counter, and elapsed time.
func (g *Game) drawHeader(screen *ebiten.Image, snap *engine.Snapshot) {
	ebitenutil.DebugPrintAt(screen, snap.ConfigName, boardMargin, 8)

	minutes := int(snap.ElapsedSeconds) / 60
	seconds := int(snap.ElapsedSeconds) % 60
	stats := fmt.Sprintf("Moves: %d   Time: %02d:%02d", snap.Moves, minutes, seconds)
	ebitenutil.DebugPrintAt(screen, stats, boardMargin, 24)

	ebitenutil.DebugPrintAt(screen, snap.Message, boardMargin, 40)
}

// drawBoard renders the tiles. The logical grid already holds the post-move
// layout; the in-flight tile is drawn at its source cell plus the animation
// offset so it visually slides into place.
func (g *Game) drawBoard(screen *ebiten.Image, snap *engine.Snapshot) {
	size := snap.Size
	pitch := float64(tileSize + tileGap)

	ebitenutil.DrawRect(screen,
		float64(g.boardX), float64(g.boardY),
		float64(g.boardW), float64(g.boardW), boardColor)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			tile := snap.Tiles[row*size+col]
			if tile == engine.BlankTile {
				continue
			}

			drawRow := float64(row)
			drawCol := float64(col)
			if snap.Animation != nil && snap.Animation.TileID == tile {
				drawRow = float64(snap.Animation.From.Row) + snap.Animation.DY
				drawCol = float64(snap.Animation.From.Col) + snap.Animation.DX
			}

			x := float64(g.boardX) + float64(tileGap) + drawCol*pitch
			y := float64(g.boardY) + float64(tileGap) + drawRow*pitch

			fill := tileColor
			home := engine.SolvedCell(tile, size)
			if home.Row == row && home.Col == col {
				fill = tileHomeColor
			}

			ebitenutil.DrawRect(screen, x, y, tileSize, tileSize, fill)
			ebitenutil.DebugPrintAt(screen,
				fmt.Sprintf("%d", tile),
				int(x)+tileSize/2-4,
				int(y)+tileSize/2-6)
		}
	}
}

// drawFooter renders the controls line and the New Game button.
func (g *Game) drawFooter(screen *ebiten.Image) {
	y := g.screenHeight - footerHeight
	ebitenutil.DebugPrintAt(screen, "Arrows/WASD: slide | Click: slide tile", boardMargin, y+8)
	ebitenutil.DebugPrintAt(screen, "R: new game", boardMargin, y+24)

	bx, by, bw, bh := g.newGameButtonRect()
	ebitenutil.DrawRect(screen, bx, by, bw, bh, buttonColor)
	ebitenutil.DebugPrintAt(screen, "New Game", int(bx)+25, int(by)+8)
}

// drawWinOverlay dims the board and shows the solved banner.
func (g *Game) drawWinOverlay(screen *ebiten.Image, snap *engine.Snapshot) {
	ebitenutil.DrawRect(screen,
		float64(g.boardX), float64(g.boardY),
		float64(g.boardW), float64(g.boardW), overlayColor)

	centerX := g.boardX + g.boardW/2
	centerY := g.boardY + g.boardW/2
	ebitenutil.DebugPrintAt(screen, "SOLVED!", centerX-25, centerY-16)
	ebitenutil.DebugPrintAt(screen, snap.Message, centerX-len(snap.Message)*3, centerY)
	ebitenutil.DebugPrintAt(screen, "Press R for a new game", centerX-66, centerY+16)
}

// Layout returns the fixed window size computed from the grid.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

func main() {
	config := engine.DefaultConfig()

	// An optional argument names a config JSON file.
	if len(os.Args) > 1 {
		loaded, err := engine.LoadPuzzleConfig(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", os.Args[1], err)
		}
		config = loaded
	}

	game, err := NewGame(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(game.screenWidth, game.screenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Sliding Tile Puzzle - %s", config.Name))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
