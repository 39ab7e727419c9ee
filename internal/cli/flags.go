package cli

import (
	"fmt"
	"strings"

	"github.com/compdb-dev/compdb/internal/config"
	"github.com/spf13/cobra"
)

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

// ApplyFlagOverrides lets non-empty command-line flags win over config-file
// values.
func ApplyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	overrides := []struct {
		flag  string
		field *string
	}{
		{"plz", &cfg.Plz},
		{"build-config", &cfg.BuildConfig},
		{"profile", &cfg.Profile},
		{"output", &cfg.Output},
	}
	for _, override := range overrides {
		value, err := OptionalStringFlag(cmd, override.flag)
		if err != nil {
			return err
		}
		if value != "" {
			*override.field = value
		}
	}
	return nil
}
