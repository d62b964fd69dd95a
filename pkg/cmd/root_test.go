package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sqltidy/sqltidy/pkg/consts"
	"github.com/sqltidy/sqltidy/pkg/format"
	"github.com/urfave/cli/v3"
)

// runApp exercises a full application run, global flags and Before hook
// included, with the fmt command registered.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { currentFormatter = nil })

	var buf bytes.Buffer

	fmtCommand := fmtCmd(format.NewDefault())
	fmtCommand.Writer = &buf

	app := newApp(Params{
		Commands: []*cli.Command{fmtCommand},
		Version:  &Version{Version: "test"},
	})
	app.Writer = &buf

	err := app.Run(context.Background(), append([]string{"sqltidy"}, args...))
	return buf.String(), err
}

func TestApp_ConfigFlag(t *testing.T) {
	tmpDir := t.TempDir()

	cfgFile := filepath.Join(tmpDir, "wide.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`indent: "    "`+"\n"), consts.ModeFile))

	sqlFile := filepath.Join(tmpDir, "query.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte("select 1 from t"), consts.ModeFile))

	t.Run("flag selects the config file", func(t *testing.T) {
		output, err := runApp(t, "--config", cfgFile, "fmt", sqlFile)
		require.NoError(t, err)
		require.Equal(t, "select\n    1\nfrom\n    t\n", output)
	})

	t.Run("short alias works", func(t *testing.T) {
		output, err := runApp(t, "-c", cfgFile, "fmt", sqlFile)
		require.NoError(t, err)
		require.Equal(t, "select\n    1\nfrom\n    t\n", output)
	})

	t.Run("absent default config leaves defaults in place", func(t *testing.T) {
		output, err := runApp(t, "fmt", sqlFile)
		require.NoError(t, err)
		require.Equal(t, "select\n  1\nfrom\n  t\n", output)
	})

	t.Run("explicitly requested missing config fails", func(t *testing.T) {
		_, err := runApp(t, "--config", filepath.Join(tmpDir, "nope.yaml"), "fmt", sqlFile)
		require.Error(t, err)
		require.Contains(t, err.Error(), "config file not found")
	})

	t.Run("invalid config fails", func(t *testing.T) {
		badFile := filepath.Join(tmpDir, "bad.yaml")
		require.NoError(t, os.WriteFile(badFile, []byte("indent: [unclosed"), consts.ModeFile))

		_, err := runApp(t, "--config", badFile, "fmt", sqlFile)
		require.Error(t, err)
	})
}
