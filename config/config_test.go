package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "syncdatagen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(data), 0644))
	t.Setenv(ConfigEnv, configPath)
	return configPath
}

func TestLoad(t *testing.T) {
	writeConfig(t, `
generator:
  outputDir: "generated"
  namespace: "WebKit"
log:
  level: 2
  noColor: true
`)
	t.Setenv("SYNCDATAGEN_GENERATOR_NAMESPACE", "WebCore")
	t.Setenv("SYNCDATAGEN_LOG_LEVEL", "3")

	cfg, err := Load([]string{"--log-level", "0", "ProcessSyncData.in"})
	require.NoError(t, err)

	expected := defaults()
	expected.Generator.InputFile = "ProcessSyncData.in"
	expected.Generator.OutputDir = "generated"
	expected.Generator.Namespace = "WebCore"
	expected.Log.Level = Error
	expected.Log.NoColor = true
	assert.Equal(t, expected, *cfg)
}

func TestLoadPositional(t *testing.T) {
	t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	tests := []struct {
		name      string
		args      []string
		inputFile string
		outputDir string
		check     bool
		wantErr   error
	}{
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: ErrUsage,
		},
		{
			name:      "input only",
			args:      []string{"ProcessSyncData.in"},
			inputFile: "ProcessSyncData.in",
		},
		{
			name:      "input and output",
			args:      []string{"ProcessSyncData.in", "out"},
			inputFile: "ProcessSyncData.in",
			outputDir: "out",
		},
		{
			name:      "extra arguments ignored",
			args:      []string{"--check", "ProcessSyncData.in", "out", "extra"},
			inputFile: "ProcessSyncData.in",
			outputDir: "out",
			check:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.inputFile, cfg.Generator.InputFile)
			assert.Equal(t, tt.outputDir, cfg.Generator.OutputDir)
			assert.Equal(t, tt.check, cfg.Generator.Check)
			assert.Equal(t, "WebCore", cfg.Generator.Namespace)
		})
	}
}

func TestLoadVersion(t *testing.T) {
	t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load([]string{"--version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestLoadErrors(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		_, err := Load([]string{"--help"})
		assert.ErrorIs(t, err, pflag.ErrHelp)
	})
	t.Run("unknown flag", func(t *testing.T) {
		_, err := Load([]string{"--unknown", "ProcessSyncData.in"})
		assert.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		writeConfig(t, "generator: [")
		_, err := Load([]string{"ProcessSyncData.in"})
		assert.ErrorContains(t, err, "could not parse config")
	})
}

func TestLicense(t *testing.T) {
	var cfg Config
	license, err := cfg.License()
	require.NoError(t, err)
	assert.Empty(t, license)

	cfg.Generator.LicenseFile = filepath.Join(t.TempDir(), "LICENSE")
	_, err = cfg.License()
	assert.ErrorContains(t, err, "could not read license")

	require.NoError(t, os.WriteFile(cfg.Generator.LicenseFile, []byte("Public domain."), 0644))
	license, err = cfg.License()
	require.NoError(t, err)
	assert.Equal(t, "Public domain.", license)
}

func TestHashsum(t *testing.T) {
	h1, err := Hashsum([]byte("ProcessSyncData"))
	require.NoError(t, err)
	h2, err := Hashsum("ProcessSyncData")
	require.NoError(t, err)
	h3, err := Hashsum("DocumentSyncData")
	require.NoError(t, err)
	assert.Len(t, h1, 16)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)

	c1, err := defaults().Hashsum()
	require.NoError(t, err)
	c2, err := defaults().Hashsum()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}
