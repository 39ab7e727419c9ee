package compdb

import (
	"strings"

	"github.com/compdb-dev/compdb/internal/graph"
)

// Substitution maps one placeholder token to its resolved literal value.
// Placeholders appear at most once in a well-formed template, so each
// substitution replaces the first occurrence only.
type Substitution struct {
	Placeholder string
	Value       string
}

// Normalize rewrites a raw command template into a literal command: the part
// after the first step separator (where the output gets archived) is dropped,
// trailing spaces and newlines are trimmed, then each substitution is applied.
func Normalize(raw string, subs []Substitution) string {
	cmd := TruncateAtSeparator(raw)
	for _, sub := range subs {
		cmd = strings.Replace(cmd, sub.Placeholder, sub.Value, 1)
	}
	return cmd
}

// TruncateAtSeparator keeps the substring before the first step separator,
// right-trimmed of spaces and newlines. Commands without a separator are
// returned right-trimmed.
func TruncateAtSeparator(cmd string) string {
	if idx := strings.Index(cmd, graph.StepSeparator); idx >= 0 {
		cmd = cmd[:idx]
	}
	return strings.TrimRight(cmd, " \n")
}
