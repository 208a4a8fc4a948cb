package rasteredit

import (
	"fmt"

	"github.com/gogpu/rasteredit/internal/tree"
)

// EngineError is returned by every Session operation that fails. It carries
// enough information for a UI to decide whether to surface the message to
// the person using the editor (User true) or log it as an internal bug
// (User false).
type EngineError struct {
	User   bool
	Reason string
}

func userError(format string, args ...any) *EngineError {
	return &EngineError{User: true, Reason: fmt.Sprintf(format, args...)}
}

func applicationError(format string, args ...any) *EngineError {
	return &EngineError{User: false, Reason: fmt.Sprintf(format, args...)}
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("<Error (%s): user=%v>", e.Reason, e.User)
}

// fromTreeError translates a tree.Error into the engine's own error type,
// mirroring the distinction the original engine draws between a bad
// caller-supplied index (user error) and an internal inconsistency
// (application error).
func fromTreeError(err error) *EngineError {
	if err == nil {
		return nil
	}
	te, ok := err.(*tree.Error)
	if !ok {
		return applicationError("%s", err.Error())
	}
	switch te.Kind {
	case tree.ErrNoSuchNodeUser:
		return userError("no such node: %d", te.Index)
	case tree.ErrNoSuchNodeInternal:
		return applicationError("no such node: %d", te.Index)
	case tree.ErrNoParent:
		return applicationError("no parent of: %d", te.Index)
	case tree.ErrCantRemoveRoot:
		return userError("can't remove root")
	default:
		return applicationError("%s", err.Error())
	}
}
