// Command esdemo spins a textured sphere or cube, rendered by the software
// pipeline and presented in an ebiten window.
//
// Keys: Space switches the shape, Up/Down change the spin speed, B toggles
// barycentric shading, Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/samuelscerri/escore/esutil"
	"github.com/samuelscerri/escore/internal/config"
	"github.com/samuelscerri/escore/raster"
	"github.com/samuelscerri/escore/shapes"
	"github.com/samuelscerri/escore/transform"
)

type userData struct {
	cfg config.Config

	shape       *shapes.Shape
	shapeName   string
	texture     *raster.Texture
	program     raster.Program
	barycentric bool
	projection  transform.Matrix

	buffer    *raster.Buffer
	offscreen *ebiten.Image
	angle     float32
	spin      float32

	frameLog *esutil.FrameLog
}

func generate(cfg config.Config, name string) *shapes.Shape {
	if name == config.ShapeCube {
		return shapes.GenCube(cfg.Model.Scale, shapes.AllAttribs)
	}
	return shapes.GenSphere(cfg.Model.Slices, cfg.Model.Radius, shapes.AllAttribs)
}

// wrapAngle maps degrees into [0, 360).
func wrapAngle(angle float32) float32 {
	angle = math32.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func update(ctx *esutil.Context, deltaTime float32) error {
	var data *userData = ctx.UserData.(*userData)

	data.angle = wrapAngle(data.angle + data.spin*deltaTime)

	if data.frameLog != nil {
		return data.frameLog.Log(ebiten.ActualFPS())
	}
	return nil
}

func keyPressed(ctx *esutil.Context, key ebiten.Key) error {
	var data *userData = ctx.UserData.(*userData)

	switch key {
	case ebiten.KeyEscape:
		return esutil.ErrQuit
	case ebiten.KeySpace:
		if data.shapeName == config.ShapeCube {
			data.shapeName = config.ShapeSphere
		} else {
			data.shapeName = config.ShapeCube
		}
		data.shape = generate(data.cfg, data.shapeName)
		esutil.LogMessage("switched to %s, %d indices", data.shapeName, data.shape.NumIndices)
	case ebiten.KeyUp:
		data.spin += 10
	case ebiten.KeyDown:
		data.spin -= 10
	case ebiten.KeyB:
		data.barycentric = !data.barycentric
		if data.barycentric {
			data.program = raster.Program{Fragment: raster.BarycentricShader}
		} else {
			data.program = raster.DefaultProgram
		}
	}
	return nil
}

func draw(ctx *esutil.Context, screen *ebiten.Image) error {
	var data *userData = ctx.UserData.(*userData)

	data.buffer.Clear(16, 16, 24)
	data.buffer.ClearDepth()

	var model transform.Matrix = transform.Identity()
	// Both calls left-multiply, so the shape spins in place and is then pushed back.
	model.Translate(0, 0, -data.cfg.Camera.Distance)
	model.Rotate(data.angle, 1, 1, 0)

	var mvp transform.Matrix
	transform.Multiply(&mvp, &model, &data.projection)

	stats, err := data.buffer.Draw(data.shape, &mvp, data.texture, data.program)
	if err != nil {
		return err
	}

	data.offscreen.WritePixels(data.buffer.Pixels())

	var options *ebiten.DrawImageOptions = &ebiten.DrawImageOptions{}
	options.GeoM.Scale(
		float64(ctx.Width)/float64(data.buffer.Width),
		float64(ctx.Height)/float64(data.buffer.Height),
	)
	screen.DrawImage(data.offscreen, options)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  fps %.0f  triangles %d  culled %d  fragments %d",
		data.shapeName, ebiten.ActualFPS(), stats.Rasterized, stats.Culled, stats.Fragments))

	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()

	if err := config.SetupTracing(*tlevel); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var renderWidth, renderHeight int = cfg.Window.Width / cfg.Window.Scale, cfg.Window.Height / cfg.Window.Scale

	data := &userData{
		cfg:       cfg,
		shapeName: cfg.Model.Shape,
		shape:     generate(cfg, cfg.Model.Shape),
		program:   raster.DefaultProgram,
		buffer:    raster.NewBuffer(renderWidth, renderHeight),
		offscreen: ebiten.NewImage(renderWidth, renderHeight),
		spin:      cfg.Model.Spin,
	}

	data.projection = transform.Identity()
	data.projection.Perspective(cfg.Camera.FOV, float32(renderWidth)/float32(renderHeight), cfg.Camera.Near, cfg.Camera.Far)

	if cfg.Model.Texture != "" {
		if data.texture, err = raster.LoadTexture(cfg.Model.Texture); err != nil {
			log.Fatal(err)
		}
	} else {
		data.texture = raster.NewCheckerTexture(64, 8)
	}

	if cfg.FrameLog != "" {
		if data.frameLog, err = esutil.NewFrameLog(cfg.FrameLog, data.shapeName); err != nil {
			log.Fatal(err)
		}
		defer data.frameLog.Close()
	}

	ctx := esutil.NewContext(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	ctx.UserData = data
	ctx.RegisterUpdateFunc(update)
	ctx.RegisterKeyFunc(keyPressed)
	ctx.RegisterDrawFunc(draw)

	if err := esutil.MainLoop(ctx); err != nil {
		log.Fatal(err)
	}
}
