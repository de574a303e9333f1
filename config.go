package whitedwarf

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _wdconfig{}
)

// _wdconfig is a "hidden" struct, just use `wdConfig`
type _wdconfig struct {
	outputDir string
}

// wdConfig returns the library configuration. The WHITEDWARF_CONFIG
// environment variable may point at a directory holding a conf.toml with a
// `general.output_path`; without it everything lands in ./out.
func wdConfig() _wdconfig {
	if cfgLoaded {
		return config
	}
	config.outputDir = "./out"
	if confPath := os.Getenv("WHITEDWARF_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if dir := viper.GetString("general.output_path"); dir != "" {
			config.outputDir = dir
		}
	}
	if err := os.MkdirAll(config.outputDir, 0755); err != nil {
		panic(fmt.Errorf("could not create output directory %s: %s", config.outputDir, err))
	}
	cfgLoaded = true
	return config
}
