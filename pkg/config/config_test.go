package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	. "github.com/sqltidy/sqltidy/pkg/config"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/sqltidy/sqltidy/pkg/format"
)

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		yamlData := `
indent: "    "
max_line_length: 100
params:
  named:
    org: "42"
  positional: ["1", "'two'"]
`
		cfg, err := LoadConfig(strings.NewReader(yamlData))
		require.NoError(t, err)
		require.Equal(t, "    ", cfg.Indent)
		require.Equal(t, 100, cfg.MaxLineLength)
		require.Equal(t, "42", cfg.Params.Named["org"])
		require.Equal(t, []string{"1", "'two'"}, cfg.Params.Positional)
	})

	t.Run("missing fields fall back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("max_line_length: 80"))
		require.NoError(t, err)
		require.Equal(t, format.Defaults.Indent, cfg.Indent)
		require.Equal(t, 80, cfg.MaxLineLength)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("indent: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, consts.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(`indent: "\t"` + "\n"), consts.ModeFile))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "\t", cfg.Indent)

	_, err = LoadConfigFile(filepath.Join(tmpDir, "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	t.Run("nil config yields defaults", func(t *testing.T) {
		var cfg *Config
		require.Equal(t, format.Defaults, cfg.Options())
		require.NotNil(t, cfg.GetFormatter())
	})

	t.Run("values carry over", func(t *testing.T) {
		cfg := &Config{
			Indent:        "    ",
			MaxLineLength: 120,
			Params:        Params{Positional: []string{"1"}},
		}

		opts := cfg.Options()
		require.Equal(t, "    ", opts.Indent)
		require.Equal(t, 120, opts.MaxLineLength)
		require.Equal(t, []string{"1"}, opts.Params.Positional)
	})
}
