package inspect

import (
	"ayna/pkg/frame"
)

// SearchFrame walks outward from start looking for a callable bound to name.
// A nil start begins at CallerFrame(). At each frame the locals binding takes
// precedence over the globals binding; the first callable found wins and the
// search stops. Returns (nil, nil) when the chain is exhausted.
//
// Resolution is exactly two-level per frame (locals, then globals); there is
// no lexical closure chain across frames.
func (in *Inspector) SearchFrame(name string, start *frame.Frame) (*frame.Frame, frame.Callable) {
	f := start
	if f == nil {
		f = in.CallerFrame()
	}

	for ; f != nil; f = f.Parent {
		v, ok := f.Locals[name]
		if !ok {
			v, ok = f.Globals[name]
		}

		if ok {
			if fn, isFn := v.AsCallable(); isFn {
				return f, fn
			}
		}
	}

	return nil, nil
}

// SearchFunc is SearchFrame returning only the callable, or nil.
func (in *Inspector) SearchFunc(name string, start *frame.Frame) frame.Callable {
	_, fn := in.SearchFrame(name, start)
	return fn
}
