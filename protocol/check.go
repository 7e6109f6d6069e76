package protocol

import (
	"cmp"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keyline-data/keyline/logger"
	"github.com/keyline-data/keyline/pkg/kvstream"
	"github.com/keyline-data/keyline/utils"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate config and the sort order of every input",
	Run: func(cmd *cobra.Command, args []string) {
		err := func() error {
			if len(args) == 0 {
				return fmt.Errorf("check needs at least one input")
			}
			if err := utils.CheckIfFilesExists(args...); err != nil {
				return err
			}

			// Inputs are independent, check them concurrently.
			checks := make([]func() error, 0, len(args))
			for _, path := range args {
				checks = append(checks, func() error {
					return checkInput(path)
				})
			}

			return utils.ErrExec(checks...)
		}()

		logger.LogConnectionStatus(err)
	},
}

// checkInput verifies that the file's keys arrive in non-decreasing
// order, the contract every producer owes the stream framework.
func checkInput(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	stream := kvstream.NewLeaf(file)

	var prev string
	var seen int64
	for {
		rec, ok, err := stream.Pull()
		if err != nil {
			return fmt.Errorf("%s: %s", path, err)
		}
		if !ok {
			logger.Debugf("%s: %d records, sorted", path, seen)
			return nil
		}

		if seen > 0 && cmp.Compare(rec.Key, prev) < 0 {
			return fmt.Errorf("%s: key %q after %q breaks the sort order", path, rec.Key, prev)
		}
		prev = rec.Key
		seen++
	}
}
