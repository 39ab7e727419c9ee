package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

type RunSummary struct {
	Mode       string `json:"mode"`
	RepoRoot   string `json:"repo_root"`
	Packages   int    `json:"packages"`
	Targets    int    `json:"targets"`
	Entries    int    `json:"entries"`
	Skipped    int    `json:"skipped"`
	Output     string `json:"output"`
	Rewritten  bool   `json:"rewritten"`
	DurationMS int64  `json:"duration_ms"`
}

func PrintRunSummary(summary RunSummary, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	fmt.Printf("%s complete in %dms\n", summary.Mode, summary.DurationMS)
	fmt.Printf("output: %s\n", summary.Output)
	fmt.Printf("graph: packages=%d targets=%d\n", summary.Packages, summary.Targets)
	fmt.Printf("entries: emitted=%d skipped_targets=%d rewritten=%t\n",
		summary.Entries, summary.Skipped, summary.Rewritten)
	return nil
}

func ReportWarnings(warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
}
