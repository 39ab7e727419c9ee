package compdb

import (
	"fmt"

	"github.com/compdb-dev/compdb/internal/graph"
)

// GenDir is the conventional generated-output subpath under the repo root;
// database entries name it as the directory to execute commands from.
const GenDir = "plz-out/gen"

// Entry is one compilation database record. The field names and the
// array-of-objects artifact shape are a fixed external contract.
type Entry struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}

// Emit produces one Entry per (compilable target, source file) pair, in graph
// order: package, then target within the package, then source within the
// target. Entries are never deduplicated or reordered.
//
// Targets classified as compilable but declaring no compiler tool path are
// skipped rather than failing the run; one warning per skipped target is
// returned for the caller to report.
func Emit(g *graph.BuildGraph, repoRoot string, classify Classifier) ([]Entry, []string) {
	genDir := repoRoot + "/" + GenDir
	entries := make([]Entry, 0)
	warnings := make([]string, 0)

	for _, pkg := range g.Packages {
		for i := range pkg.Targets {
			target := &pkg.Targets[i]
			if !classify(target) {
				continue
			}
			toolPath, ok := target.ToolPath(graph.ToolCC)
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"skipping target with no %s tool path (command %q)", graph.ToolCC, target.Command))
				continue
			}
			for _, src := range target.Sources() {
				entries = append(entries, Entry{
					Directory: genDir,
					Command: Normalize(target.Command, []Substitution{
						{Placeholder: graph.SrcsPlaceholder, Value: src},
						{Placeholder: graph.ToolCCPlaceholder, Value: toolPath},
					}),
					File: repoRoot + "/" + src,
				})
			}
		}
	}

	return entries, warnings
}
