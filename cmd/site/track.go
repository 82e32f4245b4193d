package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/meridian-cargo/website/internal/api/handler"
	"github.com/meridian-cargo/website/internal/core/service"
	"github.com/meridian-cargo/website/internal/infrastructure/courier"
	"github.com/meridian-cargo/website/internal/infrastructure/store/jsonfile"
	"github.com/meridian-cargo/website/internal/pkg/config"
	"github.com/meridian-cargo/website/pkg/logger"
)

func newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <tracking-id>",
		Short: "Look up one shipment the way the tracking API does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), nil)
			if err != nil {
				return err
			}
			log := logger.New(logger.Options{
				Level:   cfg.LogLevel,
				Output:  cmd.ErrOrStderr(),
				Service: serviceName,
			})

			svc := service.NewTrackingService(jsonfile.NewStore(cfg.StorePath()), courier.Noop{}, log)
			shipment, err := svc.Track(cmd.Context(), args[0])
			if err != nil {
				if _, msg, ok := handler.LookupError(err); ok {
					return errors.New(msg)
				}
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(shipment)
		},
	}
}
