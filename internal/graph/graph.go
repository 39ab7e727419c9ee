// Package graph models the build orchestrator's dependency graph as returned
// by `plz query graph`: packages, their targets, and the command templates and
// source lists attached to each target.
package graph

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Fixed tokens of the plz command-template convention.
const (
	// ToolCCPlaceholder marks "invoke the compiler tool" in a command template.
	ToolCCPlaceholder = "$TOOLS_CC"
	// SrcsPlaceholder marks "all declared sources" in a command template.
	SrcsPlaceholder = "${SRCS_SRCS}"
	// StepSeparator separates sequential shell steps inside one command.
	StepSeparator = " && "
	// ToolCC is the tool role under which the compiler path is declared.
	ToolCC = "cc"
)

// ErrNoPackages indicates a structurally valid document without the top-level
// packages field.
var ErrNoPackages = errors.New("graph document has no packages field")

type BuildGraph struct {
	Packages []Package `json:"packages"`
}

type Package struct {
	Targets []Target `json:"targets"`
}

// Target is one buildable unit within a package. The graph mixes compile,
// archive, link and codegen steps with no explicit kind field; classification
// happens downstream.
type Target struct {
	Command string     `json:"command"`
	Srcs    SourceList `json:"srcs"`
	Tools   ToolPaths  `json:"tools"`
}

type SourceList struct {
	Srcs []string `json:"srcs"`
}

// ToolPaths maps a tool role (e.g. "cc") to the resolved paths declared for it.
type ToolPaths map[string][]string

// TargetCount returns the total number of targets across all packages.
func (g *BuildGraph) TargetCount() int {
	count := 0
	for _, pkg := range g.Packages {
		count += len(pkg.Targets)
	}
	return count
}

// Sources returns the target's declared source files in graph order.
func (t *Target) Sources() []string {
	return t.Srcs.Srcs
}

// ToolPath returns the first path declared for the given tool role. Only the
// first entry is ever used; the meaning of additional entries is undocumented.
func (t *Target) ToolPath(role string) (string, bool) {
	paths := t.Tools[role]
	if len(paths) == 0 {
		return "", false
	}
	return paths[0], true
}

// UnmarshalJSON tolerates targets whose fields have unexpected shapes. Such
// targets decode to zero values and are skipped by classification rather than
// failing the whole document.
func (t *Target) UnmarshalJSON(data []byte) error {
	var wire struct {
		Command json.RawMessage `json:"command"`
		Srcs    json.RawMessage `json:"srcs"`
		Tools   json.RawMessage `json:"tools"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Command != nil {
		_ = json.Unmarshal(wire.Command, &t.Command)
	}
	if wire.Srcs != nil {
		_ = json.Unmarshal(wire.Srcs, &t.Srcs)
	}
	if wire.Tools != nil {
		_ = json.Unmarshal(wire.Tools, &t.Tools)
	}
	return nil
}

// UnmarshalJSON supports both a single path string and a path list per role.
func (p *ToolPaths) UnmarshalJSON(data []byte) error {
	var roles map[string]json.RawMessage
	if err := json.Unmarshal(data, &roles); err != nil {
		return err
	}

	out := make(ToolPaths, len(roles))
	for role, raw := range roles {
		var paths []string
		if err := json.Unmarshal(raw, &paths); err == nil {
			out[role] = paths
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			out[role] = []string{single}
		}
	}
	*p = out
	return nil
}

// Parse decodes a raw graph document. It performs no semantic validation
// beyond structural decoding and the presence of the packages field.
func Parse(raw []byte) (*BuildGraph, error) {
	var doc struct {
		Packages json.RawMessage `json:"packages"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode graph document: %w", err)
	}
	if doc.Packages == nil {
		return nil, ErrNoPackages
	}

	var packages []Package
	if err := json.Unmarshal(doc.Packages, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return &BuildGraph{Packages: packages}, nil
}
