package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deepskylog/deepskygo/deepskylog"
	"github.com/deepskylog/deepskygo/internal/config"
	"github.com/deepskylog/deepskygo/internal/observability"
)

var equipmentCmd = &cobra.Command{
	Use:   "equipment <instruments|eyepieces|lenses|filters> <username>",
	Short: "List a DeepskyLog user's equipment",
	Long: `Fetch one category of observing equipment for a DeepskyLog user and print
it. The DeepskyLog instance is selected with DSL_BASE_URL.`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runEquipment(ctx, os.Stdout, args[0], args[1])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(equipmentCmd)
}

func runEquipment(ctx context.Context, w io.Writer, category, username string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	logger := observability.NewLogger(cfg)
	client := deepskylog.NewClient(cfg.BaseURL, cfg.RequestTimeout, logger, nil)

	switch category {
	case "instruments":
		items, err := client.Instruments(ctx, username)
		if err != nil {
			return fetchFailed(w, err)
		}
		return printEquipment(w, items, instrumentRow)
	case "eyepieces":
		items, err := client.Eyepieces(ctx, username)
		if err != nil {
			return fetchFailed(w, err)
		}
		return printEquipment(w, items, eyepieceRow)
	case "lenses":
		items, err := client.Lenses(ctx, username)
		if err != nil {
			return fetchFailed(w, err)
		}
		return printEquipment(w, items, lensRow)
	case "filters":
		items, err := client.Filters(ctx, username)
		if err != nil {
			return fetchFailed(w, err)
		}
		return printEquipment(w, items, filterRow)
	default:
		fmt.Fprintf(w, "Error: unknown category %q (want instruments, eyepieces, lenses or filters)\n", category)
		return 1
	}
}

func fetchFailed(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	return 2
}

func printEquipment[T any](w io.Writer, items map[int]T, row func(T) string) int {
	if jsonOutput {
		data, _ := json.MarshalIndent(items, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No equipment found.")
		return 0
	}

	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-6s %s", "ID", "Description")))
	for _, id := range ids {
		fmt.Fprintf(w, "%-6d %s\n", id, row(items[id]))
	}
	return 0
}

func instrumentRow(i deepskylog.Instrument) string {
	desc := fmt.Sprintf("%s (%s, %.0fmm", i.Name, i.Type, i.Diameter)
	if i.FixedMagnification != nil && *i.FixedMagnification != 0 {
		return desc + fmt.Sprintf(", %gx fixed)", *i.FixedMagnification)
	}
	return desc + fmt.Sprintf(", f/%g)", i.FD)
}

func eyepieceRow(e deepskylog.Eyepiece) string {
	state := "inactive"
	if e.Active {
		state = "active"
	}
	return fmt.Sprintf("%s (%gmm, %s)", e.Name, e.FocalLength, state)
}

func lensRow(l deepskylog.Lens) string {
	return fmt.Sprintf("%s (%gx)", l.Name, l.Factor)
}

func filterRow(f deepskylog.Filter) string {
	return fmt.Sprintf("%s (type %d)", f.Name, f.Type)
}
