package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/propwire/resolve-cli/internal/ingest"
	"github.com/propwire/resolve-cli/internal/model"
	"github.com/propwire/resolve-cli/internal/owner"
)

var (
	groupFormat string
	groupSave   bool
)

var groupCmd = &cobra.Command{
	Use:   "group <file> [file...]",
	Short: "Discover owner portfolios from property-owner rows",
	Long:  "Reads (id, owner) rows from one or more CSV or XLSX files and groups properties held by the same owner. Files are loaded concurrently; grouping runs over the combined rows in file order.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		owners, err := loadPropertyOwners(args)
		if err != nil {
			return err
		}

		groups := owner.GroupByOwner(owners)

		runID := uuid.New()
		zap.L().Info("portfolios grouped",
			zap.String("run_id", runID.String()),
			zap.Int("properties", len(owners)),
			zap.Int("groups", len(groups)))

		if groupSave {
			st, closePool, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closePool()

			n, err := st.SavePortfolios(ctx, runID, groups)
			if err != nil {
				return eris.Wrap(err, "save portfolios")
			}
			zap.L().Info("portfolios saved", zap.Int64("rows", n))
		}

		return writeOutput(os.Stdout, groupFormat, groups)
	},
}

// loadPropertyOwners reads every input file concurrently, then
// concatenates rows in argument order so grouping stays deterministic.
func loadPropertyOwners(paths []string) ([]model.PropertyOwner, error) {
	perFile := make([][]model.PropertyOwner, len(paths))
	var g errgroup.Group

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			rows, err := ingest.ReadPropertyOwners(path)
			if err != nil {
				return err
			}
			perFile[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var owners []model.PropertyOwner
	for _, rows := range perFile {
		owners = append(owners, rows...)
	}
	return owners, nil
}

func init() {
	groupCmd.Flags().StringVar(&groupFormat, "format", "json", "output format (json|yaml)")
	groupCmd.Flags().BoolVar(&groupSave, "save", false, "persist the groups to Postgres")
	rootCmd.AddCommand(groupCmd)
}
