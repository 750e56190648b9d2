// crosshairctl manages CS2 crosshair share codes and per-account
// configuration: decode and encode codes, keep a named profile library,
// and copy or apply configuration across Steam accounts.
package main

import (
	"os"

	"github.com/cs2cfg/crosshairctl/lib/config"
	"github.com/cs2cfg/crosshairctl/lib/library"
	"github.com/cs2cfg/crosshairctl/lib/util/logger"
	"github.com/spf13/cobra"
)

var log = logger.GetLogger()

var rootCmd = &cobra.Command{
	Use:   "crosshairctl",
	Short: "CS2 crosshair share code and config manager",
	Long: `crosshairctl converts CS2 crosshair share codes
(CSGO-xxxxx-xxxxx-xxxxx-xxxxx-xxxxx) to and from readable profiles,
keeps a named library of profiles, and copies or applies CS2
configuration between Steam accounts.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(config.InitConfig)
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "",
		"config file (default $HOME/"+config.BaseDirName+"/config.yaml)")
}

// openLibrary loads the profile library from its configured location.
func openLibrary() (*library.Library, error) {
	return library.Open(config.Current().LibraryPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Debug("Command failed")
		os.Exit(1)
	}
}
