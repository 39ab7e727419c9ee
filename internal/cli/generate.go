package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/compdb-dev/compdb/internal/compdb"
	"github.com/compdb-dev/compdb/internal/config"
	"github.com/compdb-dev/compdb/internal/graph"
	"github.com/compdb-dev/compdb/internal/plz"
	"github.com/spf13/cobra"
)

func RunGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := ApplyFlagOverrides(cmd, cfg); err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	return GenerateDatabase(cmd.Context(), cfg, asJSON)
}

// GenerateDatabase runs the pipeline end to end: resolve the repo root once,
// query and parse the graph, emit entries, write the artifact. Any failure
// before the write aborts the run with nothing written.
func GenerateDatabase(ctx context.Context, cfg *config.Config, asJSON bool) error {
	start := time.Now()
	client := plz.NewClient(cfg.Plz)

	repoRoot, err := client.RepoRoot(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve repo root: %w", err)
	}

	raw, err := client.QueryGraph(ctx, plz.QueryOptions{
		BuildConfig: cfg.BuildConfig,
		Profile:     cfg.Profile,
	})
	if err != nil {
		return fmt.Errorf("failed to query build graph: %w", err)
	}

	g, err := graph.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse build graph: %w", err)
	}

	entries, warnings := compdb.Emit(g, repoRoot, compdb.DefaultClassifier)
	ReportWarnings(warnings)

	rewritten, err := compdb.Write(cfg.Output, entries)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	summary := RunSummary{
		Mode:       "generate",
		RepoRoot:   repoRoot,
		Packages:   len(g.Packages),
		Targets:    g.TargetCount(),
		Entries:    len(entries),
		Skipped:    len(warnings),
		Output:     cfg.Output,
		Rewritten:  rewritten,
		DurationMS: time.Since(start).Milliseconds(),
	}

	return PrintRunSummary(summary, asJSON)
}
