package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/compdb-dev/compdb/internal/compdb"
	"github.com/compdb-dev/compdb/internal/config"
	"github.com/spf13/cobra"
)

const fakeGraph = `{
  "packages": [
    {
      "targets": [
        {
          "command": "$TOOLS_CC -c ${SRCS_SRCS} -o out.o && ar out.a out.o",
          "srcs": {"srcs": ["a.cc", "b.cc"]},
          "tools": {"cc": ["/usr/bin/clang++"]}
        }
      ]
    }
  ]
}`

func writeFakePlz(t *testing.T, graphDoc string) string {
	t.Helper()
	script := `#!/bin/sh
if [ "$2" = "reporoot" ]; then
  printf '/repo\n'
  exit 0
fi
cat <<'EOF'
` + graphDoc + `
EOF
`
	path := filepath.Join(t.TempDir(), "plz")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake plz: %v", err)
	}
	return path
}

func newGenerateCmdForTest() *cobra.Command {
	cmd := &cobra.Command{Use: "generate"}
	cmd.Flags().String("plz", "", "")
	cmd.Flags().StringP("build-config", "c", "", "")
	cmd.Flags().String("profile", "", "")
	cmd.Flags().StringP("output", "o", "", "")
	cmd.Flags().Bool("json", false, "")
	return cmd
}

func TestGenerateDatabaseEndToEnd(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), compdb.DatabaseFile)
	cfg := config.Default()
	cfg.Plz = writeFakePlz(t, fakeGraph)
	cfg.Output = outputPath

	if err := GenerateDatabase(context.Background(), cfg, false); err != nil {
		t.Fatalf("GenerateDatabase failed: %v", err)
	}

	first, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}

	var entries []compdb.Entry
	if err := json.Unmarshal(first, &entries); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	want := []compdb.Entry{
		{Directory: "/repo/plz-out/gen", Command: "/usr/bin/clang++ -c a.cc -o out.o", File: "/repo/a.cc"},
		{Directory: "/repo/plz-out/gen", Command: "/usr/bin/clang++ -c b.cc -o out.o", File: "/repo/b.cc"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("unexpected entries:\n got %+v\nwant %+v", entries, want)
	}

	if err := GenerateDatabase(context.Background(), cfg, false); err != nil {
		t.Fatalf("second GenerateDatabase failed: %v", err)
	}
	second, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read artifact (second run): %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected deterministic artifact between runs")
	}
}

func TestGenerateDatabaseAbortsBeforeWritingOnParseError(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), compdb.DatabaseFile)
	cfg := config.Default()
	cfg.Plz = writeFakePlz(t, "not json")
	cfg.Output = outputPath

	if err := GenerateDatabase(context.Background(), cfg, false); err == nil {
		t.Fatalf("expected error for malformed graph document")
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Fatalf("expected no artifact to be written on parse failure")
	}
}

func TestGenerateDatabaseFailsWhenOrchestratorFails(t *testing.T) {
	cfg := config.Default()
	cfg.Plz = filepath.Join(t.TempDir(), "does-not-exist")
	cfg.Output = filepath.Join(t.TempDir(), compdb.DatabaseFile)

	if err := GenerateDatabase(context.Background(), cfg, false); err == nil {
		t.Fatalf("expected error when the orchestrator binary is missing")
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cmd := newGenerateCmdForTest()
	mustSetFlag(t, cmd, "profile", "gcc")
	mustSetFlag(t, cmd, "output", "out/compile_commands.json")

	cfg := config.Default()
	if err := ApplyFlagOverrides(cmd, cfg); err != nil {
		t.Fatalf("ApplyFlagOverrides failed: %v", err)
	}
	if cfg.Profile != "gcc" {
		t.Fatalf("expected --profile to override config, got %q", cfg.Profile)
	}
	if cfg.Output != "out/compile_commands.json" {
		t.Fatalf("expected --output to override config, got %q", cfg.Output)
	}
	if cfg.BuildConfig != config.DefaultBuildConfig {
		t.Fatalf("expected unset flags to keep config values, got %q", cfg.BuildConfig)
	}
}

func TestOptionalStringFlagToleratesMissingFlag(t *testing.T) {
	value, err := OptionalStringFlag(&cobra.Command{}, "profile")
	if err != nil {
		t.Fatalf("OptionalStringFlag failed: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty value for undeclared flag, got %q", value)
	}
}

func mustSetFlag(t *testing.T, cmd *cobra.Command, name, value string) {
	t.Helper()
	if err := cmd.Flags().Set(name, value); err != nil {
		t.Fatalf("failed to set --%s=%s: %v", name, value, err)
	}
}
