package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/quant/internal/config"
	"github.com/conneroisu/quant/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the quant version, commit, build time, Go version and platform.

Examples:
  quant version            # Full build information
  quant version --short    # Version and commit only
  quant version -o json    # Machine-readable`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersion(cmd *cobra.Command, args []string) error {
	formatter, err := outputFormatter()
	if err != nil {
		return err
	}

	info := version.Get()
	out := cmd.OutOrStdout()

	switch {
	case formatter.Format() != config.FormatText:
		return formatter.Encode(out, info)
	case versionShort:
		_, err = fmt.Fprintln(out, info.Short())
	default:
		_, err = fmt.Fprintln(out, info.String())
	}
	return err
}
