// Command site runs the Meridian Cargo website and its tracking tools.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

const serviceName = "meridian-site"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "site",
		Short: "Meridian Cargo website and shipment tracking",
		Long: `Serves the Meridian Cargo marketing pages and the shipment tracking API.

All settings come from the environment (PORT, ENV, LOG_LEVEL, APP_ROOT,
STORE_FILE, TEMPLATE_DIR, STATIC_DIR, REDIS_ADDR, REDIS_DB,
TRACK_RATE_LIMIT, TRACK_RATE_WINDOW).`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newTrackCmd(),
		newCheckStoreCmd(),
	)
	return root
}
