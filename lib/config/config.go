// Package config loads application settings: where the Steam installation
// lives, where the profile library is stored, and whether config copies
// take a backup first. Settings come from a YAML file, created with
// defaults on first run.
package config

import (
	"os"
	"path/filepath"

	"github.com/cs2cfg/crosshairctl/lib/util"
	"github.com/cs2cfg/crosshairctl/lib/util/logger"
	"github.com/spf13/viper"
)

var (
	// CfgFile is the config file override from the command line; empty
	// selects the default location.
	CfgFile string

	log = logger.GetLogger()
)

// BaseDirName is the application directory under the user's home.
const BaseDirName = ".crosshairctl"

// AppConfig holds the resolved application settings.
type AppConfig struct {
	// SteamPath overrides Steam installation discovery when set.
	SteamPath string
	// LibraryPath is the profile library JSON document.
	LibraryPath string
	// Backup controls whether config copies back up the target first.
	Backup bool
}

// InitConfig wires viper: config file location, defaults, and first-run
// file creation.
func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildAppDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	handleConfigFile()
}

func setDefaults() {
	viper.SetDefault("steam_path", "")
	viper.SetDefault("library_path", filepath.Join(BuildAppDirPath(), "profiles.json"))
	viper.SetDefault("backup", true)
}

// Current returns the application configuration from the live viper
// settings.
func Current() *AppConfig {
	return &AppConfig{
		SteamPath:   viper.GetString("steam_path"),
		LibraryPath: viper.GetString("library_path"),
		Backup:      viper.GetBool("backup"),
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildAppDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// BuildAppDirPath returns the application directory under the user home.
func BuildAppDirPath() string {
	return filepath.Join(util.UserHome(), BaseDirName)
}
