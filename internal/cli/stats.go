package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/khanglvm/icon-hub-mcp/internal/query"
	"github.com/khanglvm/icon-hub-mcp/internal/storage"
)

// StatsReport is the JSON form of 'stats'.
type StatsReport struct {
	Libraries  []query.LibraryStats `json:"libraries"`
	Components int                  `json:"components"`
	History    *storage.Stats       `json:"history,omitempty"`
	MissRate   float64              `json:"missRate"`
}

// NewStatsCmd creates the 'stats' command.
func NewStatsCmd(opts *GlobalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog and query history statistics",
		Long: `Show the loaded libraries and components, and aggregate the query
history recorded by the server (~/.icon-hub-mcp/history.db).

Queries are stored as SHA-256 hashes only; the history reports how many
queries each tool answered and how many found nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := collectStats(opts)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printStats(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func collectStats(opts *GlobalOptions) (StatsReport, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return StatsReport{}, err
	}

	svc, err := newService(cfg, nil)
	if err != nil {
		return StatsReport{}, err
	}
	defer svc.Close()

	report := StatsReport{
		Libraries:  svc.Libraries(),
		Components: svc.ComponentCount(),
	}

	store := openStorage(cfg)
	if !store.Enabled() {
		return report, nil
	}
	if err := store.Init(); err != nil {
		return report, nil
	}
	defer store.Close()

	hist, err := store.Stats()
	if err != nil {
		return report, fmt.Errorf("failed to read history: %w", err)
	}
	report.History = &hist
	report.MissRate = hist.MissRate()
	return report, nil
}

func printStats(w io.Writer, r StatsReport) {
	fmt.Fprintln(w, "Catalog")
	fmt.Fprintln(w, "=======")
	for _, lib := range r.Libraries {
		version := lib.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "  %-12s %6d icons  %4d skipped  version %s\n", lib.ID, lib.Icons, lib.Skipped, version)
	}
	fmt.Fprintf(w, "  %-12s %6d\n", "components", r.Components)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Query history")
	fmt.Fprintln(w, "=============")
	if r.History == nil {
		fmt.Fprintln(w, "  History is disabled.")
		return
	}
	if r.History.Total == 0 {
		fmt.Fprintln(w, "  No queries recorded yet.")
		return
	}
	for _, op := range r.History.Operations {
		fmt.Fprintf(w, "  %-20s %6d queries  %6d misses\n", op.Operation, op.Total, op.Misses)
	}
	fmt.Fprintf(w, "  %-20s %6d queries  miss rate %.1f%%\n", "total", r.History.Total, r.MissRate*100)
}
