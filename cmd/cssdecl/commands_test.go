package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssdecl"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetKoanf()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlag restores a boolean flag so later executions start clean.
func resetFlag(t *testing.T, cmd *cobra.Command, name string) {
	t.Helper()
	f := cmd.Flags().Lookup(name)
	require.NotNil(t, f)
	require.NoError(t, f.Value.Set(f.DefValue))
	f.Changed = false
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "argument",
			args: []string{"format", "margin:1px 1px 1px 1px;color:red"},
			want: "margin: 1px; color: red;\n",
		},
		{
			name: "several arguments",
			args: []string{"fmt", "padding: 0", "border-width: 1px"},
			want: "padding: 0px;\nborder-width: 1px;\n",
		},
		{
			name:  "stdin",
			stdin: "margin-top: 1px;\nmargin-right: 2px;\nmargin-bottom: 1px;\nmargin-left: 2px;\n",
			args:  []string{"format"},
			want:  "margin: 1px 2px;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestFormatCommand_Rejected(t *testing.T) {
	out, errOut, err := execute(t, "", "format", "width: nope; color: red")
	require.NoError(t, err)
	assert.Equal(t, "color: red;\n", out)
	assert.Contains(t, errOut, "rejected:")
	assert.Contains(t, errOut, `"nope"`)

	_, _, err = execute(t, "", "format", "--strict", "width: nope; color: red")
	resetFlag(t, formatCmd, "strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 declarations rejected")
}

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "collapsed shorthand",
			args: []string{"get", "margin", "margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px"},
			want: "1px 2px\n",
		},
		{
			name: "longhand of shorthand",
			args: []string{"get", "border-top-color", "border: 1px solid red"},
			want: "red\n",
		},
		{
			name: "important",
			args: []string{"get", "color", "color: red !important"},
			want: "red !important\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGetCommand_Missing(t *testing.T) {
	_, _, err := execute(t, "width: 0", "get", "color")
	require.Error(t, err)
	assert.Equal(t, "color has no value", err.Error())
}

func TestExpandCommand(t *testing.T) {
	out, _, err := execute(t, "", "expand", "margin", "1px 2px")
	require.NoError(t, err)
	assert.Equal(t,
		"margin-top: 1px;\nmargin-right: 2px;\nmargin-bottom: 1px;\nmargin-left: 2px;\n",
		out)
}

func TestExpandCommand_Invalid(t *testing.T) {
	_, _, err := execute(t, "", "expand", "margin", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, cssdecl.ErrInvalidValue)
}

func TestLintCommand_Fix(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(".cssdecl.yaml", []byte("lint:\n  paths:\n    - \"*.html\"\n"), 0644))
	require.NoError(t, os.WriteFile("index.html", []byte("<p style=\"margin:0\"></p>\n"), 0644))

	_, errOut, err := execute(t, "", "lint", "--fix")
	resetFlag(t, lintCmd, "fix")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Fixed 1 attributes in 1 files")

	data, err := os.ReadFile("index.html")
	require.NoError(t, err)
	assert.Equal(t, "<p style=\"margin: 0px;\"></p>\n", string(data))
}
