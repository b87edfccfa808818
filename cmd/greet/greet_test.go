package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/greet/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points config lookup at empty temp directories and
// scrubs GREET_* from the environment so tests see only defaults.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Chdir(t.TempDir())
	for _, key := range []string{"GREET_PREFIX", "GREET_NAME", "GREET_LOG_LEVEL"} {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v) // registers restore
			_ = os.Unsetenv(key)
		}
	}
}

// newTestCmd returns a throwaway command with captured output.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestRunGreetDefault(t *testing.T) {
	isolateConfig(t)
	greetFlags.prefix = ""

	cmd, buf := newTestCmd()
	require.NoError(t, runGreet(cmd, nil))
	assert.Equal(t, "Hello, World!\n", buf.String())
}

func TestRunGreetNameArg(t *testing.T) {
	isolateConfig(t)
	greetFlags.prefix = ""

	cmd, buf := newTestCmd()
	require.NoError(t, runGreet(cmd, []string{"Gopher"}))
	assert.Equal(t, "Hello, Gopher!\n", buf.String())
}

func TestRunGreetPrefixFlag(t *testing.T) {
	isolateConfig(t)
	greetFlags.prefix = "Howdy"
	defer func() { greetFlags.prefix = "" }()

	cmd, buf := newTestCmd()
	require.NoError(t, runGreet(cmd, []string{"Gopher"}))
	assert.Equal(t, "Howdy, Gopher!\n", buf.String())
}

func TestRunGreetConfiguredPrefix(t *testing.T) {
	isolateConfig(t)
	greetFlags.prefix = ""

	require.NoError(t, config.WriteProject(&config.Config{
		Prefix:   "Welcome",
		Name:     "Friend",
		LogLevel: "info",
	}))

	cmd, buf := newTestCmd()
	require.NoError(t, runGreet(cmd, nil))
	assert.Equal(t, "Welcome, Friend!\n", buf.String())
}

func TestRunGreetInvalidConfig(t *testing.T) {
	isolateConfig(t)
	greetFlags.prefix = ""
	t.Setenv("GREET_LOG_LEVEL", "verbose")

	cmd, _ := newTestCmd()
	err := runGreet(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
