package protocol

import (
	"github.com/spf13/cobra"

	"github.com/keyline-data/keyline/logger"
)

// specCmd represents the spec command
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Emit a sample configuration document",
	Run: func(cmd *cobra.Command, args []string) {
		logger.LogSpec(map[string]any{
			"diff": map[string]any{
				"fold":            false,
				"unique":          false,
				"ignore-prefixes": []string{},
				"report": map[string]any{
					"limit": 65536,
				},
			},
			"merge": map[string]any{
				"fold":            false,
				"ignore-prefixes": []string{},
				"report": map[string]any{
					"limit": 65536,
				},
			},
		})
	},
}
