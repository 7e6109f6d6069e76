package protocol

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keyline-data/keyline/constants"
	"github.com/keyline-data/keyline/logger"
	"github.com/keyline-data/keyline/pkg/kvstream"
	"github.com/keyline-data/keyline/types"
	"github.com/keyline-data/keyline/utils"
)

type diffSettings struct {
	// Fold groups duplicate keys before comparing; Unique keeps the
	// first record per key. Diff inputs must be unique-keyed, so at
	// most one of the two applies.
	Fold           bool     `json:"fold"`
	Unique         bool     `json:"unique" validate:"excluded_with=Fold"`
	IgnorePrefixes []string `json:"ignore-prefixes"`
	ReportLimit    int      `json:"report.limit" validate:"gte=0"`
}

var diffConfig diffSettings

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff LEFT RIGHT",
	Short: "Walk two sorted inputs as a full outer join",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("diff takes exactly two inputs, got %d", len(args))
		}
		if err := utils.CheckIfFilesExists(args...); err != nil {
			return err
		}

		return loadSettings("diff", &diffConfig)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		leftFile, err := os.Open(args[0])
		if err != nil {
			return err
		}
		rightFile, err := os.Open(args[1])
		if err != nil {
			_ = leftFile.Close()
			return err
		}
		defer func() {
			if err := utils.ErrExecSequential(leftFile.Close, rightFile.Close); err != nil {
				logger.Errorf("failed to close inputs: %s", err)
			}
		}()

		left := assemble(leftFile, diffConfig.Fold, diffConfig.Unique)
		right := assemble(rightFile, diffConfig.Fold, diffConfig.Unique)

		report := logger.NewReport(diffConfig.ReportLimit)
		summary := &types.Summary{
			Run:     viper.GetString(constants.RunID),
			Command: "diff",
			Inputs:  args,
		}

		start := time.Now()
		err = left.Diff(right).Each(func(pair kvstream.Pair[string, kvstream.Value]) error {
			if ignoredKey(pair.Key, diffConfig.IgnorePrefixes) {
				return nil
			}

			summary.Records++
			switch {
			case pair.InBoth():
				summary.Matched++
				if !pair.Left.Equal(pair.Right) {
					report.Warnf("key %s differs: left=%q right=%q", pair.Key, pair.Left, pair.Right)
				}
			case pair.InLeft:
				summary.OnlyLeft++
				report.Infof("key %s only in %s", pair.Key, args[0])
			default:
				summary.OnlyRight++
				report.Infof("key %s only in %s", pair.Key, args[1])
			}

			fmt.Printf("%s\t%s\t%s\n", pair.Key,
				renderValue(pair.Left, pair.InLeft),
				renderValue(pair.Right, pair.InRight))
			return nil
		})
		if err != nil {
			return err
		}
		summary.Elapsed = time.Since(start).String()

		logger.LogSummary(summary)
		return report.Flush()
	},
}
