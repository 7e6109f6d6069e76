package protocol

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keyline-data/keyline/constants"
	"github.com/keyline-data/keyline/logger"
	"github.com/keyline-data/keyline/pkg/kvstream"
	"github.com/keyline-data/keyline/types"
	"github.com/keyline-data/keyline/utils"
)

type mergeSettings struct {
	Fold           bool     `json:"fold"`
	IgnorePrefixes []string `json:"ignore-prefixes"`
	ReportLimit    int      `json:"report.limit" validate:"gte=0"`
}

var mergeConfig mergeSettings

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge FILE...",
	Short: "k-way merge of sorted inputs",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("merge needs at least one input")
		}
		if err := utils.CheckIfFilesExists(args...); err != nil {
			return err
		}

		return loadSettings("merge", &mergeConfig)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		closers := make([]func() error, 0, len(args))
		defer func() {
			if err := utils.ErrExecSequential(closers...); err != nil {
				logger.Errorf("failed to close inputs: %s", err)
			}
		}()

		inputs := make([]*kvstream.Stream[string, kvstream.Value], 0, len(args))
		for _, path := range args {
			file, err := os.Open(path)
			if err != nil {
				return err
			}
			closers = append(closers, file.Close)
			inputs = append(inputs, assemble(file, mergeConfig.Fold, false))
		}

		merged := kvstream.NewMerge(inputs...)
		merged.WithFilter(func(key string, _ *kvstream.List[kvstream.Value]) bool {
			return !ignoredKey(key, mergeConfig.IgnorePrefixes)
		})

		report := logger.NewReport(mergeConfig.ReportLimit)
		summary := &types.Summary{
			Run:     viper.GetString(constants.RunID),
			Command: "merge",
			Inputs:  args,
		}

		start := time.Now()
		err := merged.Each(func(key string, group *kvstream.List[kvstream.Value]) error {
			summary.Records++
			if len(group.Items) > 1 {
				summary.Matched++
				report.Infof("key %s present in %d inputs", key, len(group.Items))
			}

			fields := []string{}
			for _, value := range group.Items {
				fields = append(fields, value.Fields()...)
			}

			if len(fields) == 0 {
				fmt.Println(key)
				return nil
			}
			fmt.Printf("%s %s\n", key, strings.Join(fields, " "))
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
