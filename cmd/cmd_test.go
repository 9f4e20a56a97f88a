package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aromatt/llstack/internal/script"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	root := NewRootCommand()
	root.AddCommand(NewRunCommand(), NewReleaseCommand(), NewVersionCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	return root, &out
}

func TestRunCommandStdin(t *testing.T) {
	root, out := newTestRoot(t)
	root.SetIn(strings.NewReader("push a b c\npop\nprint\n"))
	root.SetArgs([]string{"run", "--log-level", "none"})

	require.NoError(t, root.Execute())
	require.Equal(t, "c\nhead->b->a.\n", out.String())
}

func TestRunCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(path, []byte("# demo\npush 1 2\nset 5\ndrain\nlen\n"), 0o600))

	root, out := newTestRoot(t)
	root.SetArgs([]string{"run", path, "--log-level", "none"})

	require.NoError(t, root.Execute())
	require.Equal(t, "5\n1\n0\n", out.String())
}

func TestRunCommandErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		root, _ := newTestRoot(t)
		root.SetArgs([]string{"run", filepath.Join(t.TempDir(), "nope"), "--log-level", "none"})
		require.ErrorIs(t, root.Execute(), os.ErrNotExist)
	})

	t.Run("parse error", func(t *testing.T) {
		root, _ := newTestRoot(t)
		root.SetIn(strings.NewReader("push a\nfly\n"))
		root.SetArgs([]string{"run", "-", "--log-level", "none"})
		err := root.Execute()
		require.ErrorIs(t, err, script.ErrUnknownCommand)
		require.ErrorContains(t, err, "line 2")
	})

	t.Run("set on empty stack", func(t *testing.T) {
		root, _ := newTestRoot(t)
		root.SetIn(strings.NewReader("set a\n"))
		root.SetArgs([]string{"run", "--log-level", "none"})
		require.ErrorIs(t, root.Execute(), script.ErrEmptyStack)
	})

	t.Run("bad log level", func(t *testing.T) {
		root, _ := newTestRoot(t)
		root.SetIn(strings.NewReader("pop\n"))
		root.SetArgs([]string{"run", "--log-level", "chatty"})
		require.ErrorContains(t, root.Execute(), "unknown log level")
	})
}

func TestReleaseCommand(t *testing.T) {
	root, out := newTestRoot(t)
	root.SetArgs([]string{"release", "--nodes", "100000", "--log-level", "none"})

	require.NoError(t, root.Execute())
	require.Equal(t, "released 100000 nodes, empty=true\n", out.String())
}

func TestReleaseCommandFromEnv(t *testing.T) {
	t.Setenv("LLSTACK_NODES", "12")
	t.Setenv("LLSTACK_LOG_LEVEL", "none")
	root, out := newTestRoot(t)
	root.SetArgs([]string{"release"})

	require.NoError(t, root.Execute())
	require.Equal(t, "released 12 nodes, empty=true\n", out.String())
}

func TestReleaseCommandNegative(t *testing.T) {
	root, _ := newTestRoot(t)
	root.SetArgs([]string{"release", "--nodes", "-1", "--log-level", "none"})
	require.ErrorContains(t, root.Execute(), "must not be negative")
}

func TestVersionCommand(t *testing.T) {
	root, out := newTestRoot(t)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.True(t, strings.HasPrefix(out.String(), "llstack version dev"))
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := filepath.Join(os.Getenv("HOME"), ".llstack")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
}

func TestReleaseCommandFromConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"config file", nil, nil, "released 7 nodes, empty=true\n"},
		{"flag overrides config", []string{"--nodes", "3"}, nil, "released 3 nodes, empty=true\n"},
		{"env overrides config", nil, map[string]string{"LLSTACK_NODES": "5"}, "released 5 nodes, empty=true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Setenv("HOME", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			writeConfig(t, "nodes: 7\nlog-level: none\n")

			root := NewRootCommand()
			root.AddCommand(NewReleaseCommand())
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(append([]string{"release"}, tt.args...))

			require.NoError(t, root.Execute())
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestReleaseCommandInvalidNodes(t *testing.T) {
	t.Setenv("LLSTACK_NODES", "abc")
	root, out := newTestRoot(t)
	root.SetArgs([]string{"release", "--log-level", "none"})

	require.ErrorContains(t, root.Execute(), "invalid --nodes")
	require.Empty(t, out.String())
}
