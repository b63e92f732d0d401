// Package frame models live activation records of an embedded runtime so
// instrumentation can inspect them.
package frame

import "errors"

// Body is the executable part of a code object. The globals argument is the
// module scope the body resolves module-level names against.
type Body func(globals map[string]Value, args []Value) (Value, error)

// Code identifies the code a frame executes: the defining name, the source
// line of the definition, and the module scope the definition lives in.
type Code struct {
	Name    string
	Line    int
	Globals map[string]Value // originating module scope
	Body    Body             // executable body, nil when unavailable
	Free    []string         // names closed over from enclosing locals
}

// Frame represents one live call's activation record. Frames are created by
// the runtime on call and dropped on return; inspectors only read them.
type Frame struct {
	Owner   any              // receiver active in this frame, nil for free calls
	Code    Code             // identity of the executing code
	Line    int              // line currently executing
	Locals  map[string]Value // frame-local bindings
	Globals map[string]Value // shared with every frame of the same module scope
	Parent  *Frame           // calling frame, nil at the outermost frame
}

// TracebackEntry records one frame an error passed through and the line that
// was active there.
type TracebackEntry struct {
	Frame *Frame
	Line  int
}

// Traceback lists the frames an error unwound through, raise point first.
type Traceback []TracebackEntry

// Callable is a value that can be invoked with frame values.
type Callable interface {
	Name() string
	Call(args ...Value) (Value, error)
}

// function is a callable rebuilt from a Code, bound to a globals scope.
type function struct {
	name    string
	body    Body
	globals map[string]Value
}

func (fn *function) Name() string { return fn.name }

func (fn *function) Call(args ...Value) (Value, error) {
	return fn.body(fn.globals, args)
}

// Function rebuilds a freestanding callable for c, bound to the given globals
// scope (c's originating scope when nil). Code that closes over enclosing
// locals cannot be rebuilt and reports ErrNeedsClosure.
func (c Code) Function(globals map[string]Value) (Callable, error) {
	if len(c.Free) > 0 {
		return nil, ErrNeedsClosure
	}

	if c.Body == nil {
		return nil, ErrNoBody
	}

	if globals == nil {
		globals = c.Globals
	}

	return &function{name: c.Name, body: c.Body, globals: globals}, nil
}

var (
	ErrNeedsClosure = errors.New("code requires a closure environment")
	ErrNoBody       = errors.New("code has no executable body")
)
