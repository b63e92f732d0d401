package inspect

import (
	"ayna/pkg/frame"
)

// IsInternalError reports whether err's path through tb touched code owned by
// the inspecting hierarchy. A true result means the failure is a bug in the
// instrumentation itself and should be escalated; false means the observed
// code raised, which is normal program behavior. A nil err reports false.
func (in *Inspector) IsInternalError(err error, tb frame.Traceback) bool {
	if err == nil {
		return false
	}

	for _, e := range tb {
		if in.Owns(e.Frame) {
			return true
		}
	}

	return false
}
