package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// An explicit but missing config file is an error; defaults only apply
	// to the search-path case, exercised below with no file present.
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Repository)
	assert.Equal(t, DefaultMaxItems, cfg.MaxItems)
	assert.True(t, cfg.FoldOthers)
	assert.True(t, cfg.AllBranches)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, DefaultIssuesRegex, cfg.IssuesRegex)
	assert.False(t, cfg.NoMerges)
	assert.Zero(t, cfg.SortMax)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gitchart.yaml")

	content := "repository: /tmp/repo\nno_merges: true\nmax_items: 5\ntheme: light\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/repo", cfg.Repository)
	assert.True(t, cfg.NoMerges)
	assert.Equal(t, 5, cfg.MaxItems)
	assert.Equal(t, ThemeLight, cfg.Theme)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GITCHART_MAX_ITEMS", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxItems)
}

// Options whose default is the zero value must still be reachable through
// the environment; viper only maps env vars for keys it knows about.
func TestLoad_EnvOverrideZeroDefaultKeys(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GITCHART_NO_MERGES", "true")
	t.Setenv("GITCHART_SORT_MAX", "-5")
	t.Setenv("GITCHART_TITLE", "My repo")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.NoMerges)
	assert.Equal(t, -5, cfg.SortMax)
	assert.Equal(t, "My repo", cfg.Title)
}

// Load leaves validation to the caller so that a bad file value can be
// corrected by a flag override before Validate runs.
func TestLoad_InvalidFileValueDeferredToValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gitchart.yaml")

	require.NoError(t, os.WriteFile(path, []byte("theme: sepia\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sepia", cfg.Theme)

	require.ErrorIs(t, cfg.Validate(), ErrUnknownTheme)

	cfg.Theme = ThemeDark
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{MaxItems: 0, Theme: ThemeDark, IssuesRegex: DefaultIssuesRegex}
	require.NoError(t, valid.Validate())

	negative := valid
	negative.MaxItems = -1
	require.ErrorIs(t, negative.Validate(), ErrNegativeMaxItems)

	theme := valid
	theme.Theme = "sepia"
	require.ErrorIs(t, theme.Validate(), ErrUnknownTheme)

	regex := valid
	regex.IssuesRegex = "closes #([0-9"
	require.Error(t, regex.Validate())
}
