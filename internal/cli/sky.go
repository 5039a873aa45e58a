package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepskylog/deepskygo/photometry"
)

var skyFlags struct {
	from      string
	to        string
	value     float64
	fstOffset float64
}

var skyCmd = &cobra.Command{
	Use:   "sky",
	Short: "Convert between SQM, NELM and Bortle sky darkness scales",
	Long: `Convert a sky darkness value between the three common scales: SQM reading
(mag/arcsec²), naked-eye limiting magnitude (NELM) and Bortle class (1-9).

Conversions through the Bortle scale are bucketed and therefore lossy.`,
	Run: func(_ *cobra.Command, _ []string) {
		exitCode := runSky(os.Stdout, skyFlags.from, skyFlags.to, skyFlags.value, skyFlags.fstOffset)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	f := skyCmd.Flags()
	f.StringVar(&skyFlags.from, "from", "", "Source scale: sqm, nelm or bortle")
	f.StringVar(&skyFlags.to, "to", "", "Target scale: sqm, nelm or bortle")
	f.Float64Var(&skyFlags.value, "value", 0, "Value to convert")
	f.Float64Var(&skyFlags.fstOffset, "fst-offset", 0, "Observer's faintest-star offset for NELM conversions")
	_ = skyCmd.MarkFlagRequired("from")
	_ = skyCmd.MarkFlagRequired("to")
	_ = skyCmd.MarkFlagRequired("value")

	rootCmd.AddCommand(skyCmd)
}

func runSky(w io.Writer, from, to string, value, fstOffset float64) int {
	result, err := convertSky(from, to, value, fstOffset)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(map[string]any{from: value, to: result}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if to == "bortle" {
		fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Bortle class:"), int(result))
	} else {
		fmt.Fprintf(w, "%s %.2f\n", labelStyle.Render(to+":"), result)
	}
	return 0
}

func convertSky(from, to string, value, fstOffset float64) (float64, error) {
	switch from + ">" + to {
	case "nelm>sqm":
		return photometry.NelmToSqm(value, fstOffset)
	case "sqm>nelm":
		return photometry.SqmToNelm(value, fstOffset)
	case "nelm>bortle":
		b, err := photometry.NelmToBortle(value)
		return float64(b), err
	case "sqm>bortle":
		b, err := photometry.SqmToBortle(value)
		return float64(b), err
	case "bortle>nelm":
		return photometry.BortleToNelm(intBortle(value), fstOffset)
	case "bortle>sqm":
		return photometry.BortleToSqm(intBortle(value))
	default:
		return 0, fmt.Errorf("unsupported conversion %s to %s", from, to)
	}
}

// intBortle narrows a flag value to a Bortle class, rejecting fractions by
// passing them through out of range.
func intBortle(v float64) int {
	if v != math.Trunc(v) {
		return -1
	}
	return int(v)
}
