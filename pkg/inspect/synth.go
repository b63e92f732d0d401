package inspect

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"ayna/pkg/frame"
)

// noop is the shared stand-in for code that cannot be rebuilt.
type noop struct{}

func (noop) Name() string { return "<placeholder>" }

func (noop) Call(args ...frame.Value) (frame.Value, error) {
	return frame.Value{}, nil
}

// Placeholder is returned by CreateFunction when a frame's code cannot be
// rebuilt. It is a single instance, so callers can compare against it.
var Placeholder frame.Callable = &noop{}

type codeKey struct {
	name string
	line int
}

// Synthesized callables are cached process-wide by code identity and never
// evicted; keys are bounded by distinct source locations.
var (
	synthMu    sync.Mutex
	synthCache = make(map[codeKey]frame.Callable)
)

// CreateFunction rebuilds a callable for the code executing in f, bound to
// f's globals scope. Results are memoized by (name, line): repeated calls for
// the same code location return the identical callable, even from different
// call sites. Failures degrade to Placeholder and are memoized too, so a
// broken location does not retry on every inspection.
func (in *Inspector) CreateFunction(f *frame.Frame) frame.Callable {
	key := codeKey{name: f.Code.Name, line: f.Code.Line}

	synthMu.Lock()
	defer synthMu.Unlock()

	if fn, ok := synthCache[key]; ok {
		return fn
	}

	fn, err := f.Code.Function(f.Globals)
	if err != nil {
		fn = Placeholder
		// A closure-dependent body is the expected unsuitable shape and
		// stays silent; anything else is worth a diagnostic.
		if !errors.Is(err, frame.ErrNeedsClosure) {
			log.Warn("Could not rebuild function from frame code",
				"name", f.Code.Name, "line", f.Code.Line, "error", err)
		}
	}

	synthCache[key] = fn
	return fn
}
