package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/propwire/resolve-cli/internal/ingest"
	"github.com/propwire/resolve-cli/internal/owner"
	"github.com/propwire/resolve-cli/pkg/geocodio"
)

var (
	resolveInput   string
	resolveFormat  string
	resolveSave    bool
	resolveAddress string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a property's owner identity from source-name rows",
	Long:  "Reads (name, source, priority) rows from a CSV or XLSX file and reconciles them into a single owner identity with a confidence score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		names, err := ingest.ReadSourceNames(resolveInput)
		if err != nil {
			return err
		}

		resolved := owner.ResolveNames(names, nil)

		// Optional escalation: verify the owner's mailing address when
		// one was passed on the command line.
		if resolveAddress != "" && cfg.Geocodio.Key != "" {
			client := geocodio.NewClient(cfg.Geocodio.Key,
				geocodio.WithBaseURL(cfg.Geocodio.BaseURL),
				geocodio.WithDailyQuota(cfg.Geocodio.DailyQuota),
				geocodio.WithRateLimit(cfg.Geocodio.RateLimit))
			if r := geocodio.NormalizeAddress(ctx, client, resolveAddress); r != nil {
				resolved.MailingAddress = r.Formatted
			}
		}

		runID := uuid.New()
		zap.L().Info("owner resolved",
			zap.String("run_id", runID.String()),
			zap.String("input", resolveInput),
			zap.Int("names", len(names)),
			zap.String("entity", resolved.EntityName),
			zap.Int("confidence", resolved.Confidence))

		if resolveSave {
			st, closePool, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closePool()

			id, err := st.SaveResolvedOwner(ctx, runID, resolved)
			if err != nil {
				return eris.Wrap(err, "save resolved owner")
			}
			zap.L().Info("resolution saved", zap.Int64("id", id))
		}

		return writeOutput(os.Stdout, resolveFormat, resolved)
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveInput, "input", "", "CSV or XLSX file with name,source,priority columns (required)")
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "json", "output format (json|yaml)")
	resolveCmd.Flags().BoolVar(&resolveSave, "save", false, "persist the resolution to Postgres")
	resolveCmd.Flags().StringVar(&resolveAddress, "address", "", "raw mailing address to verify via Geocod.io")
	_ = resolveCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(resolveCmd)
}
