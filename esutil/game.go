package esutil

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// game adapts a Context to ebiten.Game.
type game struct {
	ctx *Context

	lastTime time.Time
	keys     []ebiten.Key

	now         func() time.Time
	pressedKeys func([]ebiten.Key) []ebiten.Key
}

func newGame(ctx *Context) *game {
	return &game{
		ctx:         ctx,
		now:         time.Now,
		pressedKeys: inpututil.AppendJustPressedKeys,
	}
}

// Update runs once per tick: the update callback with the seconds elapsed
// since the previous tick (not on the very first tick), then the key
// callback once per newly pressed key.
func (g *game) Update() error {
	var currentTime time.Time = g.now()

	if g.ctx.updateFunc != nil {
		if !g.lastTime.IsZero() {
			var deltaTime float32 = float32(currentTime.Sub(g.lastTime).Seconds())
			if err := g.ctx.updateFunc(g.ctx, deltaTime); err != nil {
				return err
			}
		}
	}
	g.lastTime = currentTime

	if g.ctx.keyFunc != nil {
		g.keys = g.pressedKeys(g.keys[:0])
		for _, key := range g.keys {
			if err := g.ctx.keyFunc(g.ctx, key); err != nil {
				return err
			}
		}
	}

	return nil
}

// Draw errors can't be returned to ebiten from here, so they are logged.
func (g *game) Draw(screen *ebiten.Image) {
	if g.ctx.drawFunc == nil {
		return
	}
	if err := g.ctx.drawFunc(g.ctx, screen); err != nil {
		tracer().Errorf("draw: %v", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ctx.Width, g.ctx.Height
}
