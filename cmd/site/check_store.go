package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-cargo/website/internal/infrastructure/store/jsonfile"
	"github.com/meridian-cargo/website/internal/pkg/config"
)

func newCheckStoreCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check-store",
		Short: "Audit the shipment store for entries that will not display as intended",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context(), nil)
			if err != nil {
				return err
			}

			report, err := jsonfile.NewStore(cfg.StorePath()).Audit(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d entries, %d issues\n", report.Path, report.Entries, len(report.Issues))
			for _, issue := range report.Issues {
				fmt.Fprintf(out, "  %s: %s\n", issue.TrackingID, issue.Problem)
			}

			if strict && len(report.Issues) > 0 {
				return fmt.Errorf("%d store issues found", len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any issue is found")
	return cmd
}
