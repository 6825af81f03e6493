package cli

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/openfpga/slackline/internal/store"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <history.db>",
		Short: "List recorded timing passes",
		Long: `List the timing passes recorded with report --record, oldest
first, so the movement of WNS/TNS and the critical path across
optimization iterations is visible at a glance.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

// historyEntry is the JSON shape of one recorded pass.
type historyEntry struct {
	ID        string   `json:"id"`
	Label     string   `json:"label,omitempty"`
	CreatedAt string   `json:"created_at"`
	CPDNs     *float64 `json:"cpd_ns,omitempty"`
	FmaxMHz   *float64 `json:"fmax_mhz,omitempty"`
	SWNSNs    float64  `json:"swns_ns"`
	STNSNs    float64  `json:"stns_ns"`
	HWNSNs    float64  `json:"hwns_ns"`
	HTNSNs    float64  `json:"htns_ns"`
}

func runHistory(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		formatter.Error("E_STORE", err.Error())
		return WrapExitError(ExitCommandError, "open history database", err)
	}
	defer st.Close()

	passes, err := st.ListPasses(cmd.Context())
	if err != nil {
		formatter.Error("E_STORE", err.Error())
		return WrapExitError(ExitCommandError, "list passes", err)
	}

	if formatter.JSON() {
		entries := make([]historyEntry, 0, len(passes))
		for _, p := range passes {
			e := historyEntry{
				ID:        p.ID,
				Label:     p.Label,
				CreatedAt: p.CreatedAt.Format(time.RFC3339),
				SWNSNs:    p.SWNSNs,
				STNSNs:    p.STNSNs,
				HWNSNs:    p.HWNSNs,
				HTNSNs:    p.HTNSNs,
			}
			if !math.IsNaN(p.CPDNs) {
				cpd, fmax := p.CPDNs, p.FmaxMHz
				e.CPDNs = &cpd
				e.FmaxMHz = &fmax
			}
			entries = append(entries, e)
		}
		return formatter.Success(entries)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tLABEL\tCPD (ns)\tsWNS (ns)\tsTNS (ns)\thWNS (ns)\thTNS (ns)")
	for _, p := range passes {
		cpd := "-"
		if !math.IsNaN(p.CPDNs) {
			cpd = fmt.Sprintf("%g", p.CPDNs)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\t%g\t%g\n",
			p.CreatedAt.Format(time.RFC3339), p.Label, cpd,
			p.SWNSNs, p.STNSNs, p.HWNSNs, p.HTNSNs)
	}
	return tw.Flush()
}
