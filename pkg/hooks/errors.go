package hooks

import (
	"github.com/glorpus-work/plugport/pkg/errors"
)

// ErrUnsupportedHookType is returned when a hook type is not known.
func ErrUnsupportedHookType(hookType HookType) error {
	return errors.Wrapf(errors.ErrHookExecution, "unsupported hook type: %s", hookType)
}
