// Package protocol wires the keyline CLI: stream assembly from config,
// and the spec, check, diff and merge commands.
package protocol

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keyline-data/keyline/config"
	"github.com/keyline-data/keyline/constants"
	"github.com/keyline-data/keyline/logger"
	"github.com/keyline-data/keyline/utils"
)

var (
	configPath string
	outputDir  string
	noSave     bool

	cfg      *config.File
	validate = validator.New()

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "keyline",
	Short: "root command",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// set global variables
		if !noSave {
			folder := outputDir
			if folder == "" && configPath != "not-set" {
				folder = filepath.Dir(configPath)
			}
			if folder != "" {
				viper.Set(constants.ConfigFolder, folder)
			}
		}
		viper.Set(constants.RunID, utils.ULID())

		// logger uses CONFIG_FOLDER
		logger.Init()

		if configPath != "not-set" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		} else {
			cfg = config.Empty()
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'keyline --help' to display usage guide", args[0])
		}

		return nil
	},
}

func init() {
	commands = append(commands, specCmd, checkCmd, diffCmd, mergeCmd)
	RootCmd.AddCommand(commands...)

	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "not-set", "(Optional) Config for keyline")
	RootCmd.PersistentFlags().StringVarP(&outputDir, "output", "", "", "(Optional) Folder for logs, reports and summaries")
	RootCmd.PersistentFlags().BoolVarP(&noSave, "no-save", "", false, "(Optional) Flag to skip logging artifacts in file")

	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}

// Execute runs the CLI and exits through the logger on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

// loadSettings decodes a config section into dest and validates it.
func loadSettings(section string, dest any) error {
	if err := utils.Unmarshal(map[string]any(cfg.SectionOr(section)), dest); err != nil {
		return fmt.Errorf("failed to decode %q settings: %s", section, err)
	}
	if err := validate.Struct(dest); err != nil {
		return fmt.Errorf("invalid %q settings: %s", section, err)
	}

	return nil
}
