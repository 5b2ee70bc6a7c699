// Package cli implements the sitebot command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arah-infotech/sitebot/internal/adapters/driven/config/file"
	"github.com/arah-infotech/sitebot/internal/core/services"
	"github.com/arah-infotech/sitebot/internal/logger"
)

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "sitebot",
	Short: "Arah Infotech site backend and assistant",
	Long: `sitebot serves the Arah Infotech marketing site API: careers,
products, contact forms and an AI assistant grounded in website content.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.sitebot)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openSettings opens the config store and wraps it in a settings service.
func openSettings() (*file.ConfigStore, *services.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, err
	}
	return store, services.NewSettingsService(store), nil
}
