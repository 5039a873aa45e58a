package cli

import (
	"github.com/spf13/cobra"
)

var jsonOutput bool

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "dsl",
	Short: "Deep-sky visibility calculations and DeepskyLog equipment",
	Long: `dsl computes visual detectability of deep-sky objects (contrast reserve,
optimal detection magnification, sky darkness conversions) and retrieves
observing equipment from a DeepskyLog server.

Environment Variables:
  DSL_BASE_URL  DeepskyLog instance to query (default: https://test.deepskylog.org)
  DSL_TIMEOUT   Per-request timeout (default: 10s)
  LOG_LEVEL     debug, info, warn or error (default: info)
  LOG_FORMAT    text or json (default: text)`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}
