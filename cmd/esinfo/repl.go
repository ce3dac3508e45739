package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/samuelscerri/escore/shapes"
	"github.com/samuelscerri/escore/transform"
)

// Intp applies typed commands to a current matrix and prints the result.
type Intp struct {
	repl   *readline.Instance
	matrix transform.Matrix
}

type Command struct {
	name string
	args []float32
}

// arity is the number of arguments of each command. Negative means "up to".
var arity = map[string]int{
	"identity":    0,
	"scale":       3,
	"translate":   3,
	"rotate":      4,
	"frustum":     6,
	"perspective": 4,
	"ortho":       6,
	"sphere":      -2,
	"cube":        -1,
	"help":        0,
	"quit":        0,
}

var errUnknownCommand = errors.New("unknown command")

func parseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, errUnknownCommand
	}
	cmd := Command{name: strings.ToLower(fields[0])}
	n, ok := arity[cmd.name]
	if !ok {
		return cmd, fmt.Errorf("%w: %s", errUnknownCommand, fields[0])
	}
	for _, field := range fields[1:] {
		value, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return cmd, fmt.Errorf("%s: argument %q is not a number", cmd.name, field)
		}
		cmd.args = append(cmd.args, float32(value))
	}
	if (n >= 0 && len(cmd.args) != n) || (n < 0 && len(cmd.args) > -n) {
		return cmd, fmt.Errorf("%s: wrong number of arguments (%d)", cmd.name, len(cmd.args))
	}
	return cmd, nil
}

// execute applies cmd and reports whether the session should end.
func (intp *Intp) execute(cmd Command) (quit bool, err error) {
	a := cmd.args
	switch cmd.name {
	case "quit":
		return true, nil
	case "help":
		printHelp()
		return false, nil
	case "sphere":
		slices, radius := 20, float32(1)
		if len(a) > 0 {
			slices = int(a[0])
		}
		if len(a) > 1 {
			radius = a[1]
		}
		if slices < 2 || slices > 254 {
			return false, fmt.Errorf("sphere: slices %d not in [2, 254]", slices)
		}
		printShapes([]namedShape{{fmt.Sprintf("sphere(%d, %g)", slices, radius), shapes.GenSphere(slices, radius, shapes.AllAttribs)}})
		return false, nil
	case "cube":
		scale := float32(1)
		if len(a) > 0 {
			scale = a[0]
		}
		printShapes([]namedShape{{fmt.Sprintf("cube(%g)", scale), shapes.GenCube(scale, shapes.AllAttribs)}})
		return false, nil
	case "identity":
		intp.matrix.LoadIdentity()
	case "scale":
		intp.matrix.Scale(a[0], a[1], a[2])
	case "translate":
		intp.matrix.Translate(a[0], a[1], a[2])
	case "rotate":
		intp.matrix.Rotate(a[0], a[1], a[2], a[3])
	case "frustum":
		intp.matrix.Frustum(a[0], a[1], a[2], a[3], a[4], a[5])
	case "perspective":
		intp.matrix.Perspective(a[0], a[1], a[2], a[3])
	case "ortho":
		intp.matrix.Ortho(a[0], a[1], a[2], a[3], a[4], a[5])
	}
	printMatrix("Current matrix", &intp.matrix)
	return false, nil
}

func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var helpRows = [][]string{
	{"Command", "Arguments"},
	{"identity", ""},
	{"scale", "sx sy sz"},
	{"translate", "tx ty tz"},
	{"rotate", "angle x y z"},
	{"frustum", "left right bottom top near far"},
	{"perspective", "fovy aspect near far"},
	{"ortho", "left right bottom top near far"},
	{"sphere", "[slices [radius]]"},
	{"cube", "[scale]"},
	{"help", ""},
	{"quit", ""},
}

func printHelp() {
	pterm.DefaultTable.WithHasHeader().WithData(helpRows).Render()
}
