package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"ayna/internal/logger"
	"ayna/pkg/frame"
	"ayna/pkg/inspect"
	"ayna/pkg/interp"
)

// tracer is a small instrumentation component layered over the machine;
// embedding the Inspector marks its frames as inspector-owned.
type tracer struct {
	*inspect.Inspector
}

// Main entry point for the ayna demo shell.
func main() {
	var verbose, noColor bool
	var maxDepth int

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&noColor, "n", false, "No color")
	flag.IntVar(&maxDepth, "d", 64, "Maximum call depth")
	flag.Parse()

	logger.Init(verbose, noColor)

	m := interp.NewMachine(interp.WithWriter(os.Stdout), interp.WithMaxDepth(maxDepth))
	tr := &tracer{Inspector: inspect.New(m)}

	// report is inspector-owned; it looks through its own frame to the code
	// that called it.
	m.RegisterMethod(tr, interp.Proc{
		Name: "report",
		Line: 4,
		Body: func(g map[string]frame.Value, args []frame.Value) (frame.Value, error) {
			fn, line := tr.CallerLocation()
			fmt.Fprintf(m.Output(), "observed a call from %s (line %d)\n", fn.Name(), line)

			for name, v := range tr.CallerLocals() {
				fmt.Fprintf(m.Output(), "  local %s = %s\n", name, v)
			}

			return frame.Value{}, nil
		},
	})

	m.Register(interp.Proc{
		Name:   "greet",
		Line:   11,
		Params: []string{"who"},
		Body: func(g map[string]frame.Value, args []frame.Value) (frame.Value, error) {
			if _, err := m.Call("report"); err != nil {
				return frame.Value{}, err
			}

			fmt.Fprintf(m.Output(), "hello, %s\n", args[0])
			return frame.NewBool(true), nil
		},
	})

	if _, err := m.Call("greet", frame.NewString("world")); err != nil {
		log.Fatal("Run failed", "error", err)
	}

	log.Debug("Run finished", "calls", m.Calls())
}
