// Package stacktrace turns the call stacks recorded by cockroachdb/errors into readable frames.
package stacktrace

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/errbase"
)

// Frame is a resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// Frames is a call stack, innermost call first.
type Frames []Frame

func (fs Frames) Strings() []string {
	lines := make([]string, len(fs))
	for i, f := range fs {
		lines[i] = f.String()
	}
	return lines
}

// FromError returns the deepest stack trace recorded in err's chain, or nil if there is none.
func FromError(err error) Frames {
	var trace errbase.StackTrace
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		if p, ok := e.(errbase.StackTraceProvider); ok {
			trace = p.StackTrace()
		}
	}
	if len(trace) == 0 {
		return nil
	}
	return Resolve(trace)
}

// Resolve converts program counters into frames.
// Runtime frames at the bottom of the stack (goexit, main) are dropped.
func Resolve(trace errbase.StackTrace) Frames {
	end := len(trace)
	for end > 0 {
		fn := runtime.FuncForPC(uintptr(trace[end-1]) - 1)
		if fn == nil || !strings.HasPrefix(fn.Name(), "runtime.") {
			break
		}
		end--
	}

	frames := make(Frames, 0, end)
	for _, pc := range trace[:end] {
		fn := runtime.FuncForPC(uintptr(pc) - 1)
		if fn == nil {
			frames = append(frames, Frame{Function: "unknown"})
			continue
		}
		file, line := fn.FileLine(uintptr(pc) - 1)
		frames = append(frames, Frame{Function: fn.Name(), File: file, Line: line})
	}
	return frames
}
