package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigShowCmd prints the effective configuration after file and
// environment overrides.
func newConfigShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Example: `  footprint config show
  FOOTPRINT_REPORTS_DIR=out footprint config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := rt.cfg.Marshal()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if path := rt.cfg.ConfigPath(); path != "" {
				_, _ = fmt.Fprintf(out, "# %s\n", path)
			}
			_, err = out.Write(data)
			return err
		},
	}
}
