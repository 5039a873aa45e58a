package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepskylog/deepskygo/photometry"
)

var magnificationFlags struct {
	sqm               float64
	aperture          float64
	magnitude         float64
	diameter1         float64
	diameter2         float64
	surfaceBrightness float64
	magnifications    []float64
}

var magnificationCmd = &cobra.Command{
	Use:   "magnification",
	Short: "Find the optimal detection magnification",
	Long: `Evaluate the contrast reserve at each candidate magnification and report
the one that maximizes it. Candidates are typically the magnifications your
eyepiece set provides.`,
	Run: func(cmd *cobra.Command, _ []string) {
		target := photometry.Target{
			Magnitude: magnificationFlags.magnitude,
			Diameter1: magnificationFlags.diameter1,
			Diameter2: magnificationFlags.diameter2,
		}
		if cmd.Flags().Changed("surface-brightness") {
			sb := magnificationFlags.surfaceBrightness
			target.SurfaceBrightness = &sb
		}

		exitCode := runMagnification(os.Stdout, magnificationFlags.sqm,
			magnificationFlags.aperture, target, magnificationFlags.magnifications)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	f := magnificationCmd.Flags()
	f.Float64Var(&magnificationFlags.sqm, "sqm", 21.0, "Sky brightness in mag/arcsec²")
	f.Float64Var(&magnificationFlags.aperture, "aperture", 0, "Telescope aperture in mm")
	f.Float64Var(&magnificationFlags.magnitude, "magnitude", 0, "Integrated magnitude of the object")
	f.Float64Var(&magnificationFlags.diameter1, "d1", 0, "Object diameter along the major axis in arcsec")
	f.Float64Var(&magnificationFlags.diameter2, "d2", 0, "Object diameter along the minor axis in arcsec")
	f.Float64Var(&magnificationFlags.surfaceBrightness, "surface-brightness", 0,
		"Catalogued surface brightness in mag/arcmin² (overrides --magnitude)")
	f.Float64SliceVar(&magnificationFlags.magnifications, "magnifications", nil,
		"Candidate magnifications, e.g. 50,100,150")
	_ = magnificationCmd.MarkFlagRequired("aperture")
	_ = magnificationCmd.MarkFlagRequired("magnifications")

	rootCmd.AddCommand(magnificationCmd)
}

func runMagnification(w io.Writer, sqm, aperture float64, target photometry.Target, candidates []float64) int {
	best, err := photometry.OptimalDetectionMagnification(sqm, aperture, target, candidates)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	cr, err := photometry.ContrastReserve(sqm, aperture, best, target)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(map[string]any{
			"magnification":    best,
			"contrast_reserve": cr,
			"visibility":       visibilityClass(cr),
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%s %gx\n", labelStyle.Render("Optimal magnification:"), best)
	fmt.Fprintf(w, "%s %.3f (%s)\n", labelStyle.Render("Contrast reserve:"), cr,
		classStyle(cr).Render(visibilityClass(cr)))
	return 0
}
