package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssdecl.yaml")
	configContent := `
verbose: true

format:
  strict: true

lint:
  strict: true
  output-format: json
  max-same-issues: 3
  paths:
    - "custom/**/*.html"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("format.strict"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, "json", k.String("lint.output-format"))
	assert.Equal(t, 3, k.Int("lint.max-same-issues"))
	assert.Equal(t, []string{"custom/**/*.html"}, k.Strings("lint.paths"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.cssdecl.yaml"))

	config := buildLintConfig()
	assert.Equal(t, []string{"**/*.html", "**/*.templ"}, config.Paths)
	assert.True(t, config.CheckNormalized)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssdecl.yaml")
	configContent := `
lint:
  strict: false
  output-format: summary
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("CSSDECL_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, "summary", k.String("lint.output-format"))
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"CSSDECL_VERBOSE", "verbose"},
		{"CSSDECL_LINT_STRICT", "lint.strict"},
		{"CSSDECL_LINT_CHECK_NORMALIZED", "lint.check-normalized"},
		{"CSSDECL_LINT_MAX_ISSUES_PER_LINTER", "lint.max-issues-per-linter"},
		{"CSSDECL_FORMAT_STRICT", "format.strict"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestEnvVarSetsHyphenatedKey(t *testing.T) {
	resetKoanf()

	t.Setenv("CSSDECL_LINT_CHECK_NORMALIZED", "false")
	t.Setenv("CSSDECL_LINT_MAX_SAME_ISSUES", "4")
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssdecl.yaml"))

	config := buildLintConfig()
	assert.False(t, config.CheckNormalized)
	assert.Equal(t, 4, config.MaxSameIssues)
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig()
	assert.False(t, config.Strict)
	assert.True(t, config.CheckNormalized)
	assert.False(t, config.CheckUnknown)
	assert.Equal(t, 0, config.MaxIssuesPerLinter)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssdecl.yaml")
	configContent := `
lint:
  strict: true
  paths:
    - "src/**/*.templ"
  max-issues-per-linter: 10
  print-lines: false
  check-normalized: false
  check-unknown: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"src/**/*.templ"}, config.Paths)
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
	assert.False(t, config.CheckNormalized)
	assert.True(t, config.CheckUnknown)
}

func TestBuildLintConfig_FlagKeyWins(t *testing.T) {
	resetKoanf()

	require.NoError(t, k.Set("lint.paths", []string{"from-file/*.html"}))
	require.NoError(t, k.Set("paths", []string{"from-flag/*.html"}))
	require.NoError(t, k.Set("lint.strict", true))
	require.NoError(t, k.Set("strict", false))

	config := buildLintConfig()
	assert.Equal(t, []string{"from-flag/*.html"}, config.Paths)
	assert.False(t, config.Strict)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssdecl.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "format:")
	assert.Contains(t, string(data), "lint:")
	assert.Contains(t, string(data), "check-normalized: true")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".cssdecl.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".cssdecl.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())
	resetFlag(t, initCmd, "force")

	data, err := os.ReadFile(".cssdecl.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "lint:")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "cssdecl "+version+"\n", out)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
