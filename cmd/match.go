package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/propwire/resolve-cli/internal/match"
)

var matchFormat string

var matchCmd = &cobra.Command{
	Use:   "match <name1> <name2>",
	Short: "Decide whether two owner names denote the same entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := match.SameEntity(args[0], args[1])

		zap.L().Info("match evaluated",
			zap.String("name1", args[0]),
			zap.String("name2", args[1]),
			zap.Bool("match", result.Match),
			zap.Int("confidence", result.Confidence),
			zap.String("method", string(result.Method)))

		return writeOutput(os.Stdout, matchFormat, result)
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchFormat, "format", "json", "output format (json|yaml)")
	rootCmd.AddCommand(matchCmd)
}
