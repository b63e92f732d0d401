package inspect_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ayna/pkg/frame"
	"ayna/pkg/inspect"
)

func TestIsInternalError(t *testing.T) {
	in := inspect.New(&liveStack{})
	d := &probe{Inspector: in}

	ownedFrame := &frame.Frame{Owner: d, Code: frame.Code{Name: "inspecting", Line: 8}}
	observedFrame := &frame.Frame{Code: frame.Code{Name: "user", Line: 15}}
	boom := errors.New("boom")

	t.Run("no exception", func(t *testing.T) {
		tb := frame.Traceback{{Frame: ownedFrame, Line: 8}}
		assert.False(t, in.IsInternalError(nil, tb))
	})

	t.Run("raised in inspector code", func(t *testing.T) {
		// raised inside inspector-owned code, caught one frame outward
		tb := frame.Traceback{
			{Frame: ownedFrame, Line: 9},
			{Frame: observedFrame, Line: 15},
		}
		assert.True(t, in.IsInternalError(boom, tb))
	})

	t.Run("raised in observed code only", func(t *testing.T) {
		tb := frame.Traceback{
			{Frame: observedFrame, Line: 15},
			{Frame: &frame.Frame{Code: frame.Code{Name: "main"}}, Line: 2},
		}
		assert.False(t, in.IsInternalError(boom, tb))
	})

	t.Run("owned frame anywhere on the path", func(t *testing.T) {
		tb := frame.Traceback{
			{Frame: observedFrame, Line: 15},
			{Frame: ownedFrame, Line: 8},
			{Frame: observedFrame, Line: 16},
		}
		assert.True(t, in.IsInternalError(boom, tb))
	})

	t.Run("empty traceback", func(t *testing.T) {
		assert.False(t, in.IsInternalError(boom, nil))
	})
}
