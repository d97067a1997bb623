package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	Backend() string
}

// LoadConfig discovers settings from a .tally file or TALLY_* environment
// variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.tally.db")
	viper.SetDefault("backend", BackendDiskv)
	viper.SetConfigName(".tally") // .yaml is implicit
	viper.SetEnvPrefix("TALLY")
	viper.AutomaticEnv()

	if override := os.Getenv("TALLY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, Kind: viper.GetString("backend")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Kind string `json:"backend"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.Kind
}
