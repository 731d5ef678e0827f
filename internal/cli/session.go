package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/chart"
	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/intake"
	"github.com/rshade/footprint/internal/report"
	"github.com/rshade/footprint/internal/tui"
)

// MsgNoChart is printed when the session ends without any client.
const MsgNoChart = "No client data collected; skipping trend chart."

// runSession runs the interactive loop, then the trend chart and summary.
// A failed report aborts before the chart is drawn.
func runSession(cmd *cobra.Command, cfg *config.Config, noSummary bool) error {
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitCodeConfig, Err: err}
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	renderer := report.NewRenderer(cfg.Output.ReportsDir, cfg.Output.ReportSuffix)
	var ledger footprint.Ledger

	err := intake.NewSession(cmd.InOrStdin(), out, renderer).Run(ctx, &ledger)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Int("records", ledger.Len()).Msg("session aborted")
		if errors.Is(err, intake.ErrReport) {
			return &ExitError{Code: ExitCodeOutput, Err: err}
		}
		return err
	}

	records := ledger.Records()
	written, err := chart.WriteFile(ctx, cfg.Output.ChartFile, records)
	if err != nil {
		return &ExitError{Code: ExitCodeOutput, Err: err}
	}
	if written {
		_, _ = fmt.Fprintf(out, "Graph Saved as '%s'\n", cfg.Output.ChartFile)
		_, _ = fmt.Fprintln(out, "Graph generated successfully.")
	} else {
		_, _ = fmt.Fprintln(out, MsgNoChart)
	}

	if !noSummary {
		if summary := tui.RenderSummary(records, ledger.Totals()); summary != "" {
			if !tui.IsTTY(out) {
				summary = tui.PlainText(summary)
			}
			_, _ = fmt.Fprintf(out, "\n%s", summary)
		}
	}

	logger.Info().Ctx(ctx).
		Int("records", len(records)).
		Bool("chart_written", written).
		Msg("session complete")
	return nil
}
