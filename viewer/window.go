// Package viewer shows pointdist figures in a desktop window.
package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/pointdist"
)

const defaultTitle = "Distance between points"

// Window is a pointdist.Display backed by an ebiten window. Show blocks until
// the window is closed.
type Window struct {
	Title string
}

func (w Window) Show(fig *pointdist.Figure) error {
	title := w.Title
	if title == "" {
		title = defaultTitle
	}
	ebiten.SetWindowSize(fig.Width, fig.Height)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(NewGame(fig)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
