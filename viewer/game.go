package viewer

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/smasonuk/pointdist"
)

// Game shows a single static figure until the window is closed or Escape is
// pressed.
type Game struct {
	fig  *pointdist.Figure
	face text.Face
}

func NewGame(fig *pointdist.Figure) *Game {
	log.Println("Initializing figure window...")
	g := &Game{
		fig:  fig,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
	log.Printf("Figure ready: %dx%d, distance %g", fig.Width, fig.Height, fig.Distance)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.fig.Background)
	g.fig.Paint(&screenCanvas{screen: screen, face: g.face})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fig.Width, g.fig.Height
}
