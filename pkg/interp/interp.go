// Package interp hosts registered procedures and materializes an activation
// record for every call, so instrumentation can inspect the live chain.
package interp

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"ayna/pkg/frame"
	"ayna/pkg/interp/stack"
)

// Proc declares a procedure the machine can call.
type Proc struct {
	Name   string
	Line   int        // source line of the definition
	Params []string   // parameter names, bound into frame locals
	Free   []string   // names the body closes over; blocks freestanding rebuild
	Body   frame.Body // executable body
}

type procEntry struct {
	code   frame.Code
	params []string
	owner  any
}

// Machine executes registered procedures over a shared module scope, keeping
// a call stack of frames rooted at a synthetic <module> frame.
type Machine struct {
	globals map[string]frame.Value
	procs   map[string]procEntry
	stack   *stack.Stack
	module  *frame.Frame // outermost frame, parent of all top-level calls

	out io.Writer // output writer for procedure bodies

	maxDepth int // maximum call depth (0 = unlimited)
	calls    int // calls executed
}

type Option func(*Machine)

// WithWriter sets the output writer exposed to procedure bodies
func WithWriter(w io.Writer) Option {
	return func(m *Machine) { m.out = w }
}

// WithMaxDepth sets a maximum call depth before Call returns ErrMaxDepthExceeded
func WithMaxDepth(n int) Option {
	return func(m *Machine) { m.maxDepth = n }
}

// NewMachine creates a new Machine instance
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		globals:  make(map[string]frame.Value),
		procs:    make(map[string]procEntry),
		stack:    stack.NewStack(),
		maxDepth: 0, // 0 => unlimited
	}

	// At module level locals are the globals, like a toplevel scope.
	m.module = &frame.Frame{
		Code:    frame.Code{Name: "<module>", Globals: m.globals},
		Locals:  m.globals,
		Globals: m.globals,
	}

	for _, o := range opts {
		o(m)
	}

	if m.out == nil {
		m.out = os.Stdout
	}

	return m
}

// Register binds a procedure into the module scope.
func (m *Machine) Register(p Proc) {
	m.register(nil, p)
}

// RegisterMethod binds a procedure whose frames carry owner as the active
// receiver, marking them as method calls of that instance.
func (m *Machine) RegisterMethod(owner any, p Proc) {
	m.register(owner, p)
}

func (m *Machine) register(owner any, p Proc) {
	m.procs[p.Name] = procEntry{
		code: frame.Code{
			Name:    p.Name,
			Line:    p.Line,
			Globals: m.globals,
			Body:    p.Body,
			Free:    p.Free,
		},
		params: p.Params,
		owner:  owner,
	}

	m.globals[p.Name] = frame.NewFunc(&boundProc{m: m, name: p.Name})
}

// boundProc is the callable bound into globals for a registered procedure;
// invoking it runs through the machine so a frame is materialized.
type boundProc struct {
	m    *Machine
	name string
}

func (p *boundProc) Name() string { return p.name }

func (p *boundProc) Call(args ...frame.Value) (frame.Value, error) {
	return p.m.Call(p.name, args...)
}

// Call invokes a registered procedure, pushing an activation record for the
// duration of the body. On error the record is captured into the returned
// CallError's traceback, raise point first.
func (m *Machine) Call(name string, args ...frame.Value) (frame.Value, error) {
	p, ok := m.procs[name]
	if !ok {
		return frame.Value{}, errors.Errorf("undefined procedure: %s", name)
	}

	if m.maxDepth > 0 && m.stack.Size() >= m.maxDepth {
		return frame.Value{}, ErrMaxDepthExceeded
	}

	locals := make(map[string]frame.Value, len(p.params))
	for i, prm := range p.params {
		if i < len(args) {
			locals[prm] = args[i]
		}
	}

	f := &frame.Frame{
		Owner:   p.owner,
		Code:    p.code,
		Line:    p.code.Line,
		Locals:  locals,
		Globals: m.globals,
		Parent:  m.Current(),
	}

	m.stack.Push(f)
	m.calls++

	ret, err := p.code.Body(m.globals, args)
	m.stack.Pop()

	if err != nil {
		return frame.Value{}, m.capture(f, err)
	}

	return ret, nil
}

// capture threads the unwinding frame onto the error's traceback.
func (m *Machine) capture(f *frame.Frame, err error) error {
	entry := frame.TracebackEntry{Frame: f, Line: f.Line}

	if ce, ok := err.(*CallError); ok {
		ce.Traceback = append(ce.Traceback, entry)
		return ce
	}

	return &CallError{Err: err, Traceback: frame.Traceback{entry}}
}

// Current returns the innermost live frame, the module frame when idle.
func (m *Machine) Current() *frame.Frame {
	if f := m.stack.Peek(); f != nil {
		return f
	}

	return m.module
}

// SetLine records the line currently executing in the active frame.
func (m *Machine) SetLine(n int) {
	if f := m.stack.Peek(); f != nil {
		f.Line = n
	}
}

// SetVar writes a value, preferring the active frame's locals when the name
// is already bound there
func (m *Machine) SetVar(name string, v frame.Value) {
	if f := m.stack.Peek(); f != nil {
		if _, ok := f.Locals[name]; ok {
			f.Locals[name] = v
			return
		}
	}

	m.globals[name] = v
}

// DefineLocal binds a name in the active frame's locals, the module scope
// when no call is live
func (m *Machine) DefineLocal(name string, v frame.Value) {
	if f := m.stack.Peek(); f != nil {
		f.Locals[name] = v
		return
	}

	m.globals[name] = v
}

// GetVar resolves a name, active frame locals first, then globals
func (m *Machine) GetVar(name string) (frame.Value, bool) {
	if f := m.stack.Peek(); f != nil {
		if v, ok := f.Locals[name]; ok {
			return v, true
		}
	}

	v, ok := m.globals[name]
	return v, ok
}

// Globals returns the shared module scope
func (m *Machine) Globals() map[string]frame.Value {
	return m.globals
}

// Output returns the output writer exposed to procedure bodies
func (m *Machine) Output() io.Writer {
	return m.out
}

// Calls returns the number of calls executed
func (m *Machine) Calls() int {
	return m.calls
}

// Reset clears runtime state, keeping registered procedures bound. The
// globals map keeps its identity since live codes and the module frame
// share it by reference.
func (m *Machine) Reset() {
	m.stack = stack.NewStack()
	m.calls = 0

	for k := range m.globals {
		delete(m.globals, k)
	}

	for name := range m.procs {
		m.globals[name] = frame.NewFunc(&boundProc{m: m, name: name})
	}
}

// CallError carries the activation trail an error unwound through,
// innermost frame first.
type CallError struct {
	Err       error
	Traceback frame.Traceback
}

func (e *CallError) Error() string { return e.Err.Error() }

func (e *CallError) Unwrap() error { return e.Err }

var ErrMaxDepthExceeded = errors.New("maximum call depth exceeded")
