// Package esutil is the application scaffold shared by the examples: a
// context object carrying window size and user data, draw/update/key
// callback registration, and a timer-driven main loop on top of ebiten.
//
// There is no current-context global. Every call takes the *Context it acts
// on.
package esutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("es.util")
}

// TickInterval is the period of the main loop.
const TickInterval = 15 * time.Millisecond

// ErrQuit may be returned by a callback to end the main loop cleanly.
var ErrQuit = errors.New("esutil: quit")

type (
	DrawFunc   func(ctx *Context, screen *ebiten.Image) error
	UpdateFunc func(ctx *Context, deltaTime float32) error
	KeyFunc    func(ctx *Context, key ebiten.Key) error
)

type Context struct {
	// Put your user data here
	UserData any

	Width, Height int
	Title         string

	drawFunc   DrawFunc
	updateFunc UpdateFunc
	keyFunc    KeyFunc
}

// NewContext returns a context for a window of the given size.
func NewContext(width, height int, title string) *Context {
	return &Context{Width: width, Height: height, Title: title}
}

func (ctx *Context) RegisterDrawFunc(drawFunc DrawFunc) {
	ctx.drawFunc = drawFunc
}

func (ctx *Context) RegisterUpdateFunc(updateFunc UpdateFunc) {
	ctx.updateFunc = updateFunc
}

func (ctx *Context) RegisterKeyFunc(keyFunc KeyFunc) {
	ctx.keyFunc = keyFunc
}

// LogMessage writes a message to the log.
func LogMessage(format string, args ...any) {
	tracer().Infof(format, args...)
}

// MainLoop opens the window and runs the callbacks until the window is closed
// or a callback returns ErrQuit. Any other callback error ends the loop and is
// returned.
func MainLoop(ctx *Context) error {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return fmt.Errorf("esutil: invalid window size %dx%d", ctx.Width, ctx.Height)
	}

	ebiten.SetWindowSize(ctx.Width, ctx.Height)
	ebiten.SetWindowTitle(ctx.Title)
	ebiten.SetTPS(int(time.Second / TickInterval))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	LogMessage("main loop: %dx%d at %d ticks per second", ctx.Width, ctx.Height, ebiten.TPS())

	err := ebiten.RunGame(newGame(ctx))
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
