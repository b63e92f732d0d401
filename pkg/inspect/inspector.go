// Package inspect resolves the nearest external caller across a live frame
// chain, on behalf of instrumentation layered over the runtime.
package inspect

import (
	"ayna/pkg/frame"
)

// Source exposes the live frame chain of the calling goroutine's runtime.
type Source interface {
	Current() *frame.Frame
}

// Inspector finds the nearest frame not owned by the inspecting hierarchy.
// Instrumentation components embed it; embedding also marks their instances
// as owned, so frames executing their methods are skipped by the walker.
type Inspector struct {
	src Source
}

// New creates an Inspector reading frames from src.
func New(src Source) *Inspector {
	return &Inspector{src: src}
}

// owned is satisfied by any type that embeds Inspector.
type owned interface {
	inspectorMark()
}

func (Inspector) inspectorMark() {}

// Owns reports whether f executes on behalf of the inspecting hierarchy.
// Frames without an owner are never owned.
func (in *Inspector) Owns(f *frame.Frame) bool {
	if f == nil || f.Owner == nil {
		return false
	}

	_, ok := f.Owner.(owned)
	return ok
}

// CallerFrame returns the nearest frame not owned by the inspecting
// hierarchy, however many inspector-internal calls sit in between. When the
// whole chain is owned, the outermost frame is returned; there is no
// well-defined caller beyond the entry point.
func (in *Inspector) CallerFrame() *frame.Frame {
	f := in.src.Current()
	for f != nil && in.Owns(f) && f.Parent != nil {
		f = f.Parent
	}

	return f
}

// CallerGlobals returns the module-scope bindings of the caller frame.
func (in *Inspector) CallerGlobals() map[string]frame.Value {
	return in.CallerFrame().Globals
}

// CallerLocals returns the local bindings of the caller frame.
func (in *Inspector) CallerLocals() map[string]frame.Value {
	return in.CallerFrame().Locals
}

// CallerLocation returns the caller's function and the line it is executing.
func (in *Inspector) CallerLocation() (frame.Callable, int) {
	return in.CallerFunction(), in.CallerFrame().Line
}
