// Package compdb turns a parsed build graph into compilation database
// entries: it classifies compile targets, normalizes their command templates
// into literal per-source invocations, and writes the resulting
// compile_commands.json artifact.
package compdb

import (
	"strings"

	"github.com/compdb-dev/compdb/internal/graph"
)

// Classifier decides whether a target represents a compilation step worth
// recording. Swapping the rule (e.g. for one matching on declared labels)
// leaves normalization and emission untouched.
type Classifier func(*graph.Target) bool

// CommandPrefix returns a Classifier accepting targets whose command starts
// with the given token and that declare at least one source file. Checking the
// prefix is a quick and dirty way of finding the relevant targets; a compile
// step with an unconventional command shape is silently skipped.
func CommandPrefix(prefix string) Classifier {
	return func(t *graph.Target) bool {
		return strings.HasPrefix(t.Command, prefix) && len(t.Sources()) > 0
	}
}

// DefaultClassifier accepts targets that invoke the C/C++ compiler tool.
var DefaultClassifier = CommandPrefix(graph.ToolCCPlaceholder)
