package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/propwire/resolve-cli/pkg/geocodio"
)

var geocodeFormat string

var geocodeCmd = &cobra.Command{
	Use:   "geocode <address> [address...]",
	Short: "Verify raw addresses via Geocod.io",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Geocodio.Key == "" {
			return eris.New("geocodio.key not configured")
		}

		client := geocodio.NewClient(cfg.Geocodio.Key,
			geocodio.WithBaseURL(cfg.Geocodio.BaseURL),
			geocodio.WithDailyQuota(cfg.Geocodio.DailyQuota),
			geocodio.WithRateLimit(cfg.Geocodio.RateLimit),
			geocodio.WithBatchConcurrency(cfg.Resolve.BatchConcurrency))

		results, err := client.BatchGeocode(cmd.Context(), args)
		if err != nil {
			return eris.Wrap(err, "batch geocode")
		}

		zap.L().Info("geocode complete",
			zap.Int("addresses", len(args)),
			zap.Int64("quota_remaining", client.Remaining()))

		return writeOutput(os.Stdout, geocodeFormat, results)
	},
}

func init() {
	geocodeCmd.Flags().StringVar(&geocodeFormat, "format", "json", "output format (json|yaml)")
	rootCmd.AddCommand(geocodeCmd)
}
