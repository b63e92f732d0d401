package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayna/pkg/frame"
	"ayna/pkg/inspect"
)

// liveStack is a fixed frame chain standing in for a runtime's live stack.
type liveStack struct {
	top *frame.Frame
}

func (s *liveStack) Current() *frame.Frame { return s.top }

// probe is an instrumentation component; embedding the Inspector marks its
// instances as owned by the inspecting hierarchy.
type probe struct {
	*inspect.Inspector
}

// deepProbe composes probe, standing in for a further subtype.
type deepProbe struct {
	probe
}

func newChain(globals map[string]frame.Value, frames ...*frame.Frame) *liveStack {
	var parent *frame.Frame
	for _, f := range frames {
		f.Parent = parent
		if f.Globals == nil {
			f.Globals = globals
		}
		if f.Locals == nil {
			f.Locals = map[string]frame.Value{}
		}
		parent = f
	}

	return &liveStack{top: frames[len(frames)-1]}
}

func TestCallerFrameSkipsOwnedFrames(t *testing.T) {
	globals := map[string]frame.Value{}

	d := &probe{}
	testFrame := &frame.Frame{Code: frame.Code{Name: "test", Line: 10}, Line: 12}
	callerFrame := &frame.Frame{Owner: d, Code: frame.Code{Name: "caller", Line: 20}}
	calleeFrame := &frame.Frame{Owner: d, Code: frame.Code{Name: "callee", Line: 30}}

	src := newChain(globals,
		&frame.Frame{Code: frame.Code{Name: "<module>"}},
		testFrame, callerFrame, calleeFrame)
	d.Inspector = inspect.New(src)

	got := d.CallerFrame()
	require.Same(t, testFrame, got)
	assert.Equal(t, "test", got.Code.Name)
}

func TestCallerFrameUnownedCurrent(t *testing.T) {
	globals := map[string]frame.Value{}

	free := &frame.Frame{Code: frame.Code{Name: "free"}}
	src := newChain(globals, &frame.Frame{Code: frame.Code{Name: "<module>"}}, free)

	in := inspect.New(src)
	require.Same(t, free, in.CallerFrame())
}

func TestCallerFrameExhaustedChain(t *testing.T) {
	// every frame is owned, including the outermost: the outermost frame is
	// still returned rather than failing
	globals := map[string]frame.Value{}

	d := &deepProbe{}
	outer := &frame.Frame{Owner: d, Code: frame.Code{Name: "outer"}}
	inner := &frame.Frame{Owner: d, Code: frame.Code{Name: "inner"}}

	src := newChain(globals, outer, inner)
	d.Inspector = inspect.New(src)

	require.Same(t, outer, d.CallerFrame())
}

func TestOwns(t *testing.T) {
	in := inspect.New(&liveStack{})

	d := &probe{Inspector: in}
	sub := &deepProbe{probe{Inspector: in}}

	assert.True(t, in.Owns(&frame.Frame{Owner: d}))
	assert.True(t, in.Owns(&frame.Frame{Owner: sub}), "subtypes are owned too")
	assert.False(t, in.Owns(&frame.Frame{Owner: struct{ name string }{"x"}}))
	assert.False(t, in.Owns(&frame.Frame{}), "ownerless frames are never owned")
	assert.False(t, in.Owns(nil))
}

func TestCallerBindings(t *testing.T) {
	globals := map[string]frame.Value{"g": frame.NewInt(1)}

	d := &probe{}
	caller := &frame.Frame{
		Code:   frame.Code{Name: "work", Line: 5},
		Locals: map[string]frame.Value{"x": frame.NewString("local")},
	}
	inner := &frame.Frame{Owner: d, Code: frame.Code{Name: "inspecting"}}

	src := newChain(globals, caller, inner)
	d.Inspector = inspect.New(src)

	locals := d.CallerLocals()
	require.Contains(t, locals, "x")
	assert.Equal(t, "local", locals["x"].Str)

	g := d.CallerGlobals()
	require.Contains(t, g, "g")

	// globals are shared by reference: a mutation through the accessor is
	// visible to every frame of the module scope
	g["added"] = frame.NewBool(true)
	assert.Contains(t, caller.Globals, "added")
}
