package utils

import "github.com/edaniels/golog"

// UncheckedError logs an error that is otherwise discarded, typically from a
// deferred Close.
func UncheckedError(err error) {
	if err == nil {
		return
	}
	golog.Global().Debugw("unchecked error", "error", err)
}
