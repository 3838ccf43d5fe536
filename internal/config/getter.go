package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const prefix = "ADMINEVENTS"

var conf Config

// Parse reads the configuration file given as parameter.
// Environment variables and bound command line flags take precedence over the file.
func Parse(confFile string) (*Config, error) {
	setDefault()

	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)

		err := viper.ReadInConfig()
		if err != nil {
			return &conf, fmt.Errorf("failed to read config file %v: %w", confFile, err)
		}
	}

	err := viper.Unmarshal(&conf)
	if err != nil {
		return &conf, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &conf, nil
}

func setDefault() {
	viper.SetDefault("logs.level", 0)
	viper.SetDefault("logs.encoder", EncoderTypeConsole)
	viper.SetDefault("metrics.port", 7777)
	viper.SetDefault("query.hoursBack", 1)
	viper.SetDefault("query.legacyNewest", 1000)
	viper.SetDefault("query.timeout", "2m")
	viper.SetDefault("fanout.concurrency", 1)
	viper.SetDefault("remote.shell", "powershell.exe")
	// Env only keys must be known to viper to be unmarshalled
	viper.SetDefault("credential.username", "")
	viper.SetDefault("credential.password", "")
	viper.SetDefault("query.computerNames", []string{})
	viper.SetDefault("watch.interval", "5m")
	viper.SetDefault("output.format", OutputFormatJson)
}
