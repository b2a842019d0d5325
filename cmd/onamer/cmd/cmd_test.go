package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/onamer/internal/config"
	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/output"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the CLI in an isolated home and working directory.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return executeIn(t, stdin, args...)
}

func executeIn(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	resetFlags(rootCmd)
	cfgFile = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func wordLines(stdout string) []string {
	var words []string
	for _, line := range strings.Split(stdout, "\n") {
		if w, ok := strings.CutPrefix(line, " * "); ok {
			words = append(words, strings.Fields(w)[0])
		}
	}
	return words
}

func decodeEntries(t *testing.T, stdout string) []output.Entry {
	t.Helper()
	var entries []output.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	return entries
}

func TestRootGenerates(t *testing.T) {
	r := execute(t, "", "--seed", "1", "-c", "3")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "GENERATE:\n"))
	assert.Len(t, wordLines(r.stdout), 3)
}

func TestGenerateDeterministic(t *testing.T) {
	a := execute(t, "", "generate", "--seed", "99", "-c", "20")
	b := execute(t, "", "gen", "--seed", "99", "-c", "20", "--workers", "4")
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	assert.Equal(t, a.stdout, b.stdout)
}

func TestGenerateQuietAndVerbose(t *testing.T) {
	r := execute(t, "", "-q", "--seed", "5", "-c", "4")
	require.NoError(t, r.err)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	assert.Len(t, lines, 4)
	assert.NotContains(t, r.stdout, "GENERATE:")

	r = execute(t, "", "-v", "--seed", "5", "-c", "4", "-L", "Japanese")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "INFO:\n  language: Japanese\n  word_count: 4w\n  syllable range: from 2 to 3\n  seed: 5\n")

	r = execute(t, "", "-v", "-q")
	assert.ErrorIs(t, r.err, onamer.ErrConfig)
}

func TestGenerateConfigErrors(t *testing.T) {
	tests := [][]string{
		{"--min", "5", "--max", "2"},
		{"--min", "0"},
		{"-L", "klingon"},
		{"--format", "csv"},
		{"--kana", "romaji"},
		{"--log-level", "loud"},
	}
	for _, args := range tests {
		r := execute(t, "", args...)
		assert.ErrorIs(t, r.err, onamer.ErrConfig, args)
		assert.Empty(t, r.stdout, args)
	}
}

func TestGenerateJSONWithKana(t *testing.T) {
	r := execute(t, "", "-L", "japanese", "--kana", "katakana", "--format", "json", "-c", "5", "--seed", "3")
	require.NoError(t, r.err)

	entries := decodeEntries(t, r.stdout)
	require.Len(t, entries, 5)
	for _, e := range entries {
		assert.NotEmpty(t, e.Kana, e.Word)
		assert.Equal(t, strings.Join(e.Syllables, ""), e.Word)
		assert.Nil(t, e.Accepted)
	}
}

func TestGenerateKanaTakesValue(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "-L", "japanese", "--kana", "hiragana", "-c", "5"},
		{"-L", "japanese", "--kana", "hiragana", "-c", "5"},
	} {
		r := execute(t, "", args...)
		require.NoError(t, r.err, args)
		assert.Len(t, wordLines(r.stdout), 5, args)
		assert.Regexp(t, `[ぁ-ゖ]`, r.stdout, args)
	}

	r := execute(t, "", "generate", "--kana")
	assert.Error(t, r.err, "--kana needs a value")
}

func TestGenerateOnlyAccepted(t *testing.T) {
	r := execute(t, "", "--hand", "--only-accepted", "--min", "1", "--max", "1", "--format", "json", "-c", "10", "--seed", "8")
	require.NoError(t, r.err)
	for _, e := range decodeEntries(t, r.stdout) {
		require.NotNil(t, e.Accepted)
		assert.True(t, *e.Accepted, e.Word)
	}
}

func TestGenerateSmoothWarnsAndExhausts(t *testing.T) {
	r := execute(t, "", "--smooth", "-c", "2")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "smoothness analysis is not implemented")

	r = execute(t, "", "--smooth", "--only-accepted", "--min", "2", "-c", "2")
	assert.ErrorIs(t, r.err, onamer.ErrExhausted)
}

func TestGenerateNeedIsAcceptedButIgnored(t *testing.T) {
	a := execute(t, "", "-q", "--seed", "4")
	b := execute(t, "", "-q", "--seed", "4", "--need", "xyz")
	require.NoError(t, b.err)
	assert.Equal(t, a.stdout, b.stdout)
	assert.Contains(t, b.stderr, "--need is accepted but not enforced")
}

func TestGenerateTemplate(t *testing.T) {
	r := execute(t, "", "--format", "template", "--template", "{{.Word}}:{{len .Syllables}}\n", "--min", "2", "--max", "2", "-c", "3")
	require.NoError(t, r.err)
	for _, line := range strings.Split(strings.TrimSpace(r.stdout), "\n") {
		assert.True(t, strings.HasSuffix(line, ":2"), line)
	}
}

func TestEnvAndConfigPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".config", config.AppName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("count: 4\nlanguage: generic\n"), 0644))

	r := executeIn(t, "", "-q")
	require.NoError(t, r.err)
	assert.Len(t, strings.Fields(r.stdout), 4, "config file sets count")

	t.Setenv("ONAMER_COUNT", "2")
	r = executeIn(t, "", "-q")
	require.NoError(t, r.err)
	assert.Len(t, strings.Fields(r.stdout), 2, "env overrides config")

	r = executeIn(t, "", "-q", "-c", "6")
	require.NoError(t, r.err)
	assert.Len(t, strings.Fields(r.stdout), 6, "flag overrides env")
}

func TestDotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".env"), []byte("ONAMER_COUNT=3\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("ONAMER_COUNT") })

	r := executeIn(t, "", "-q")
	require.NoError(t, r.err)
	assert.Len(t, strings.Fields(r.stdout), 3)
}

func TestExplicitConfigMissing(t *testing.T) {
	r := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, r.err)
}

func TestAnalyzeArgs(t *testing.T) {
	r := execute(t, "", "analyze", "--hand", "fu", "pat", "a", "fu")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "ANALYZE:\n")
	assert.Contains(t, r.stdout, " * fu   accepted\n")
	assert.Contains(t, r.stdout, " * pat  rejected\n")
	assert.Contains(t, r.stdout, "2 accepted, 1 rejected")
	assert.Len(t, wordLines(r.stdout), 3, "duplicates collapse")
}

func TestAnalyzeStdin(t *testing.T) {
	r := execute(t, "GENERATE:\n * sito\n * as\n", "analyze", "--hand", "--format", "json")
	require.NoError(t, r.err)
	entries := decodeEntries(t, r.stdout)
	require.Len(t, entries, 2)
	assert.Equal(t, "sito", entries[0].Word)
	assert.True(t, *entries[0].Accepted)
	assert.False(t, *entries[1].Accepted)
}

func TestAnalyzeKana(t *testing.T) {
	r := execute(t, "", "analyze", "-L", "japanese", "--kana", "--format", "json", "sakura", "kitto", "xyz")
	require.NoError(t, r.err)
	entries := decodeEntries(t, r.stdout)
	require.Len(t, entries, 3)
	assert.Equal(t, "さくら", entries[0].Kana)
	assert.Equal(t, "きっと", entries[1].Kana)
	assert.Empty(t, entries[2].Kana)

	r = execute(t, "", "analyze", "-L", "japanese", "--kana=katakana", "--format", "json", "kitto")
	require.NoError(t, r.err)
	assert.Equal(t, "キット", decodeEntries(t, r.stdout)[0].Kana)
}

func TestAnalyzeNoFlags(t *testing.T) {
	r := execute(t, "", "analyze", "qq")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "no analyzer selected")
	assert.Contains(t, r.stdout, "1 accepted, 0 rejected")
}

func TestInitAndModels(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	r := executeIn(t, "", "init")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Created config.yaml")
	assert.Contains(t, r.stdout, "Created models.yaml")

	r = executeIn(t, "", "init")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Kept existing models.yaml")

	r = executeIn(t, "", "models")
	require.NoError(t, r.err)
	for _, name := range []string{"english", "generic", "japanese", "soft", "tiny-mora"} {
		assert.Contains(t, r.stdout, name)
	}
	assert.Contains(t, r.stdout, "builtin")
	assert.Contains(t, r.stdout, "user")

	r = executeIn(t, "", "-L", "soft", "-q", "-c", "5")
	require.NoError(t, r.err)
	for _, w := range strings.Fields(r.stdout) {
		assert.Empty(t, strings.Trim(w, "aeioulmnrwy"), w)
	}

	r = executeIn(t, "", "models", "--yaml")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "start_restricted:")
}

func TestModelsFileShadowingBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models:\n  - name: English\n    kind: letters\n    vowels: a\n    consonants: b\n"), 0644))

	r := execute(t, "", "models", "--models", path)
	assert.ErrorIs(t, r.err, onamer.ErrConfig)
}

func TestBannerAndVersion(t *testing.T) {
	r := execute(t, "", "banner", "ka", "--rows", "4")
	require.NoError(t, r.err)
	assert.Equal(t, 4, strings.Count(r.stdout, "\n"))
	assert.True(t, strings.ContainsAny(r.stdout, "█▀▄"))

	r = execute(t, "", "banner")
	assert.Error(t, r.err)

	r = execute(t, "", "version")
	require.NoError(t, r.err)
	assert.Equal(t, "onamer dev\n", r.stdout)
}
