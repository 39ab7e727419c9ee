package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "compdb",
		Short: "Generate a compilation database from the plz build graph",
		Long: `Compdb asks the build orchestrator for its dependency graph and
converts every C/C++ compile step into a compile_commands.json entry,
so compiler-aware tooling (clangd, analyzers, indexers) sees the exact
invocation used to build each source file.

Output is written to the working directory and can be regenerated at
any time; reruns over an unchanged graph leave the file untouched.`,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Query the build graph and write compile_commands.json",
		RunE:  RunGenerate,
	}
	generateCmd.Flags().String("plz", "", "Build orchestrator binary to invoke (default: config file or plz)")
	generateCmd.Flags().StringP("build-config", "c", "", "Build configuration for the graph query (default: dbg)")
	generateCmd.Flags().String("profile", "", "Build profile for the graph query (default: clang)")
	generateCmd.Flags().StringP("output", "o", "", "Path of the database artifact (default: compile_commands.json)")
	generateCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("compdb %s\n", version)
		},
	}

	rootCmd.AddCommand(
		generateCmd,
		versionCmd,
	)

	return rootCmd
}
