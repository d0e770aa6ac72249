package assert

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Assert panics with the caller's file:line when condition is false.
// The optional args are a format string followed by its operands.
func Assert(condition bool, args ...any) {
	if condition {
		return
	}

	panic(failure(2, args...))
}

// NoError asserts that err is nil.
func NoError(err error) {
	if err == nil {
		return
	}

	panic(failure(2, "expected no error, got: %v", err))
}

func failure(skip int, args ...any) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "unknown"
		line = 0
	}

	filename := filepath.Base(file)

	if len(args) == 0 {
		return fmt.Sprintf("assertion failed at %s:%d", filename, line)
	}

	format, ok := args[0].(string)
	if !ok {
		format = fmt.Sprint(args[0])
	}

	return fmt.Sprintf(
		"assertion failed: %s at %s:%d",
		fmt.Sprintf(format, args[1:]...),
		filename,
		line,
	)
}
