package ir

import (
	"fmt"
	"strings"
)

// Errorf formats a plain diagnostic, without source context. Used for
// structural/semantic errors that are not anchored to a specific source
// offset (e.g. macro expansion at global scope).
func (ctx *Context) Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// SourceError constructs a point-at-source diagnostic for msg, anchored at
// ctx.SourceIdx, and returns it as an error (error(msg), spec.md §4.8).
//
// It scans ctx.Source backward from SourceIdx to the previous newline (or
// start of source), then forward to the next newline (or end of source),
// reproducing the offending line, then underlines the offending column with
// spaces and a caret.
//
// Ported as a returned error rather than a call to abort(): main is the
// only place that turns a fatal diagnostic into process termination,
// matching the teacher's run(opt) error / main split (src/main.go).
func (ctx *Context) SourceError(msg string) error {
	src := ctx.Source
	idx := ctx.SourceIdx
	if idx > len(src) {
		idx = len(src)
	}
	if idx < 0 {
		idx = 0
	}

	start := idx
	for start > 0 && src[start-1] != '\n' {
		start--
	}

	end := idx
	for end < len(src) && src[end] != '\n' {
		end++
	}

	line := src[start:end]
	underline := strings.Repeat(" ", idx-start) + "^ Error occurs here"

	return fmt.Errorf("Error %s at source location %d\n%s\n%s", msg, idx, line, underline)
}
