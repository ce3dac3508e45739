// Command esinfo prints the shapes and matrices the demo would use for a
// given configuration, without opening a window. With -i it reads matrix
// and shape commands interactively.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/samuelscerri/escore/internal/config"
	"github.com/samuelscerri/escore/shapes"
	"github.com/samuelscerri/escore/transform"
)

func main() {
	initDisplay()

	configPath := flag.String("config", "", "YAML configuration file")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "Read commands interactively")
	flag.Parse()

	if err := config.SetupTracing(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	if *interactive {
		repl, err := readline.New("es > ")
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(3)
		}
		defer repl.Close()

		pterm.Info.Println("Type help for commands, quit with <ctrl>D")
		intp := &Intp{repl: repl, matrix: transform.Identity()}
		intp.REPL()
		return
	}

	printConfig(cfg)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printConfig(cfg config.Config) {
	pterm.Info.Println("Shapes")
	printShapes([]namedShape{
		{fmt.Sprintf("sphere(%d, %g)", cfg.Model.Slices, cfg.Model.Radius), shapes.GenSphere(cfg.Model.Slices, cfg.Model.Radius, shapes.AllAttribs)},
		{fmt.Sprintf("cube(%g)", cfg.Model.Scale), shapes.GenCube(cfg.Model.Scale, shapes.AllAttribs)},
	})

	var renderWidth, renderHeight int = cfg.Window.Width / cfg.Window.Scale, cfg.Window.Height / cfg.Window.Scale
	var aspect float32 = float32(renderWidth) / float32(renderHeight)

	var perspective transform.Matrix = transform.Identity()
	perspective.Perspective(cfg.Camera.FOV, aspect, cfg.Camera.Near, cfg.Camera.Far)
	printMatrix(fmt.Sprintf("Perspective fov=%g aspect=%.3f near=%g far=%g",
		cfg.Camera.FOV, aspect, cfg.Camera.Near, cfg.Camera.Far), &perspective)

	var ortho transform.Matrix = transform.Identity()
	ortho.Ortho(-aspect, aspect, -1, 1, cfg.Camera.Near, cfg.Camera.Far)
	printMatrix("Ortho", &ortho)

	var model transform.Matrix = transform.Identity()
	model.Translate(0, 0, -cfg.Camera.Distance)
	model.Rotate(45, 1, 1, 0)
	printMatrix("Model, 45° about (1,1,0) then pushed back", &model)

	var mvp transform.Matrix
	transform.Multiply(&mvp, &model, &perspective)
	printMatrix("Model-view-projection", &mvp)
}

type namedShape struct {
	name  string
	shape *shapes.Shape
}

func printShapes(list []namedShape) {
	data := [][]string{
		{"Shape", "Vertices", "Indices", "Attribs", "Stride"},
	}
	for _, entry := range list {
		_, stride := entry.shape.Interleave(shapes.Positions | shapes.Normals | shapes.TexCoords)
		data = append(data, []string{
			entry.name,
			fmt.Sprintf("%d", entry.shape.NumVertices()),
			fmt.Sprintf("%d", entry.shape.NumIndices),
			entry.shape.Attribs().String(),
			fmt.Sprintf("%d", stride),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printMatrix(title string, m *transform.Matrix) {
	pterm.Info.Println(title)
	data := [][]string{
		{"", "0", "1", "2", "3"},
	}
	for row := 0; row < 4; row++ {
		data = append(data, []string{
			fmt.Sprintf("%d", row),
			fmt.Sprintf("%.4f", m[row][0]),
			fmt.Sprintf("%.4f", m[row][1]),
			fmt.Sprintf("%.4f", m[row][2]),
			fmt.Sprintf("%.4f", m[row][3]),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
