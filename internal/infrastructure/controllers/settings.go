package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// loadSettings resolves the configuration for a task run: an explicit
// --config path wins, otherwise the standard locations are searched, and
// when no file exists the built-in defaults apply.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debug("No config file found, using defaults")
			return entities.DefaultSettings(), nil
		}
		cfgPath = found
	}

	logger.Debugf("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}
