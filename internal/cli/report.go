package cli

import (
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/openfpga/slackline/internal/report"
	"github.com/openfpga/slackline/internal/snapshot"
	"github.com/openfpga/slackline/internal/store"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		bins     int
		recordDB string
		label    string
	)

	cmd := &cobra.Command{
		Use:   "report <snapshot.yaml>",
		Short: "Build and print the timing summary for a snapshot",
		Long: `Build the timing summary report from a timing snapshot file.

The snapshot is validated against the schema, the metrics pass runs,
and the report is printed in the fixed order downstream tools expect.
With --record, the pass summary is also appended to a history database.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, args[0], bins, recordDB, label, cmd)
		},
	}

	cmd.Flags().IntVar(&bins, "bins", report.DefaultHistogramBins, "slack histogram bucket count")
	cmd.Flags().StringVar(&recordDB, "record", "", "append the pass summary to this history database")
	cmd.Flags().StringVar(&label, "label", "", "label for the recorded pass")

	return cmd
}

// reportPayload is the JSON shape of a pass summary. All values are
// display units; cpd_ns and fmax_mhz are omitted when no path exists.
type reportPayload struct {
	Name    string   `json:"name,omitempty"`
	CPDNs   *float64 `json:"cpd_ns,omitempty"`
	FmaxMHz *float64 `json:"fmax_mhz,omitempty"`
	SWNSNs  float64  `json:"swns_ns"`
	STNSNs  float64  `json:"stns_ns"`
	HWNSNs  float64  `json:"hwns_ns"`
	HTNSNs  float64  `json:"htns_ns"`
}

func runReport(opts *RootOptions, path string, bins int, recordDB, label string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	snap, err := snapshot.Load(path)
	if err != nil {
		formatter.Error("E_SNAPSHOT", err.Error())
		return WrapExitError(ExitFailure, "load snapshot", err)
	}
	formatter.VerboseLog("Loaded snapshot %q: %d domains, %d nodes",
		snap.Name(), len(snap.ClockDomains()), len(snap.Nodes()))

	rpt, err := report.Build(snap, snap, snap, snap, bins)
	if err != nil {
		formatter.Error("E_ANALYSIS", err.Error())
		return WrapExitError(ExitFailure, "build report", err)
	}

	if recordDB != "" {
		if err := recordPass(cmd, rpt, recordDB, label); err != nil {
			formatter.Error("E_RECORD", err.Error())
			return WrapExitError(ExitCommandError, "record pass", err)
		}
	}

	if formatter.JSON() {
		return formatter.Success(payloadFromReport(rpt, snap.Name()))
	}
	return report.Render(formatter.Writer, rpt)
}

func payloadFromReport(rpt *report.Report, name string) reportPayload {
	pass := store.PassFromReport(rpt, name)
	payload := reportPayload{
		Name:   name,
		SWNSNs: pass.SWNSNs,
		STNSNs: pass.STNSNs,
		HWNSNs: pass.HWNSNs,
		HTNSNs: pass.HTNSNs,
	}
	if !math.IsNaN(pass.CPDNs) {
		payload.CPDNs = &pass.CPDNs
		payload.FmaxMHz = &pass.FmaxMHz
	}
	return payload
}

func recordPass(cmd *cobra.Command, rpt *report.Report, dbPath, label string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.RecordPass(cmd.Context(), store.PassFromReport(rpt, label))
	if err != nil {
		return err
	}
	slog.Debug("pass recorded", "id", id, "db", dbPath)
	return nil
}
