package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openfpga/slackline/internal/snapshot"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <snapshot.yaml>",
		Short: "Validate a snapshot file without running the analysis",
		Long: `Validate a timing snapshot file against the snapshot schema and
check its internal references (domain ids, node ids) without running
the metrics pass. Faster feedback than report when iterating on
snapshot exporters.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

// validationResult is the JSON payload of a validate run.
type validationResult struct {
	Valid bool   `json:"valid"`
	File  string `json:"file"`
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		formatter.Error("E_READ", err.Error())
		return WrapExitError(ExitCommandError, "read snapshot", err)
	}

	// Parse runs the schema check and then resolves references; both
	// classes of problem should fail validation.
	if _, err := snapshot.Parse(data); err != nil {
		formatter.Error("E_SCHEMA", err.Error())
		return WrapExitError(ExitFailure, "validate snapshot", err)
	}

	if formatter.JSON() {
		return formatter.Success(validationResult{Valid: true, File: path})
	}
	formatter.VerboseLog("Schema and references OK")
	return formatter.Success("valid")
}
