package inspect

import (
	"strings"

	"github.com/charmbracelet/log"

	"ayna/pkg/frame"
)

// Names the runtime gives generated scopes start with '<' (e.g. <module>);
// a search miss on such a name is expected and not worth a warning.
const generatedScopeMarker = "<"

// CallerFunction resolves the function the caller frame is executing. The
// search for the code name starts one frame further out, in the caller's own
// enclosing scope, where the definition would be bound; searching the caller
// frame itself would find its code as data, not the definition. When no named
// definition is reachable the function is rebuilt from the frame instead.
func (in *Inspector) CallerFunction() frame.Callable {
	f := in.CallerFrame()
	name := f.Code.Name

	start := f.Parent
	if start == nil {
		start = f
	}

	if fn := in.SearchFunc(name, start); fn != nil {
		return fn
	}

	if !strings.HasPrefix(name, generatedScopeMarker) {
		log.Warn("Cannot find function by name, rebuilding from frame", "name", name)
	}

	return in.CreateFunction(f)
}
