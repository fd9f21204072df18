package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	DataPath    string
	OutputDir   string
	LogLevel    string
	TopProducts int
}

func (c Config) String() string {
	return fmt.Sprintf(
		"DataPath: %s | OutputDir: %s | LogLevel: %s | TopProducts: %d",
		c.DataPath,
		c.OutputDir,
		c.LogLevel,
		c.TopProducts,
	)
}

const CONFIG_FILE_PATH = "./config.yaml"

func InitConfig(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := CONFIG_FILE_PATH
	if configFilePath != "" {
		configFile = configFilePath
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
	}

	v.BindEnv("data.path", "DATA_PATH")
	v.BindEnv("output.dir", "OUTPUT_DIR")
	v.SetDefault("output.dir", ".")
	v.SetDefault("report.top_products", 10)

	config := &Config{
		DataPath:    v.GetString("data.path"),
		OutputDir:   v.GetString("output.dir"),
		LogLevel:    v.GetString("log.level"),
		TopProducts: v.GetInt("report.top_products"),
	}

	return config, nil
}
