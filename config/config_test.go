package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponomarenko777/sales-bonus/config"
)

var configYaml = `data:
  path: ./data/data.json
output:
  dir: ./out
log:
  level: debug
report:
  top_products: 5
`

// TestInitConfig reads every field from a config file.
func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYaml), 0644))

	conf, err := config.InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./data/data.json", conf.DataPath)
	assert.Equal(t, "./out", conf.OutputDir)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 5, conf.TopProducts)
}

// TestInitConfigDefaults fills output dir and top products when absent.
func TestInitConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  path: ./d.json\n"), 0644))

	conf, err := config.InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ".", conf.OutputDir)
	assert.Equal(t, 10, conf.TopProducts)
}

// TestInitConfigMissingFile fails when the config file cannot be read.
func TestInitConfigMissingFile(t *testing.T) {
	conf, err := config.InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, conf)
}
