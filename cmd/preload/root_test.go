// Test Type: Integration Test
// Description: Executes the preload root command with buffered output

package preload_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/preload/cmd/preload"
	"github.com/arthur-debert/preload/pkg/content/catalog"
	"github.com/arthur-debert/preload/pkg/errors"
	"github.com/arthur-debert/preload/pkg/paths"
)

// isolate points config and logging at temporary directories
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("PRELOAD_LOG_NO_FILE", "true")
	t.Setenv(paths.EnvConfigDir, filepath.Join(dir, "config"))
	t.Setenv("NO_COLOR", "1")
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := preload.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestRoot_NoCommand(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t)
	require.Error(t, err)
	assert.Equal(t, preload.MsgErrNoCommand, err.Error())
	assert.Contains(t, stdout, "Usage:")
}

func TestList_EmbeddedCatalog(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(catalog.Slots()))
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 3, line)
	}
	assert.True(t, strings.HasPrefix(lines[0], catalog.SlotPlan+"\t"), "keys are sorted")
}

func TestShow(t *testing.T) {
	isolate(t)

	t.Run("raw prints the slot verbatim", func(t *testing.T) {
		stdout, _, err := execute(t, "show", "--raw", catalog.SlotPrompt)
		require.NoError(t, err)
		want, err := catalog.FS.ReadFile(catalog.Dir + "/" + catalog.SlotPrompt + ".md")
		require.NoError(t, err)
		assert.Equal(t, string(want), stdout)
	})

	t.Run("non terminal output is not rendered", func(t *testing.T) {
		stdout, _, err := execute(t, "show", catalog.SlotTasks)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "# "))
	})

	t.Run("missing slot", func(t *testing.T) {
		_, _, err := execute(t, "show", "missing-key")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("missing slot with placeholder", func(t *testing.T) {
		stdout, _, err := execute(t, "show", "--raw", "--placeholder", "coming soon", "missing-key")
		require.NoError(t, err)
		assert.Equal(t, "coming soon", stdout)
	})

	t.Run("empty placeholder is honored", func(t *testing.T) {
		stdout, _, err := execute(t, "show", "--raw", "--placeholder=", "missing-key")
		require.NoError(t, err)
		assert.Empty(t, stdout)
	})

	t.Run("requires exactly one slot", func(t *testing.T) {
		_, _, err := execute(t, "show")
		require.Error(t, err)
	})
}

func TestCheck(t *testing.T) {
	isolate(t)

	t.Run("all present", func(t *testing.T) {
		stdout, _, err := execute(t, "check", catalog.SlotTasks, catalog.SlotPlan)
		require.NoError(t, err)
		assert.Equal(t, "ok tasks-content\nok plan-content\n", stdout)
	})

	t.Run("some missing", func(t *testing.T) {
		stdout, _, err := execute(t, "check", catalog.SlotTasks, "nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Contains(t, err.Error(), "1 of 2 slots missing")
		assert.Equal(t, []string{"nope"}, errors.GetErrorDetails(err)["missing"])
		assert.Contains(t, stdout, "missing nope")
	})
}

func TestSourceFlag(t *testing.T) {
	dir := isolate(t)

	t.Run("directory", func(t *testing.T) {
		slots := filepath.Join(dir, "slots")
		writeFile(t, filepath.Join(slots, "intro.md"), "# Intro\n")
		writeFile(t, filepath.Join(slots, "outro.md"), "# Outro\n")

		stdout, _, err := execute(t, "--source", slots, "list")
		require.NoError(t, err)
		assert.Equal(t, "intro\t1\t8\noutro\t1\t8\n", stdout)
	})

	t.Run("bundle", func(t *testing.T) {
		bundle := filepath.Join(dir, "bundle.toml")
		writeFile(t, bundle, "[slots]\ngreeting = \"hello\"\n")

		stdout, _, err := execute(t, "--source", bundle, "show", "--raw", "greeting")
		require.NoError(t, err)
		assert.Equal(t, "hello", stdout)
	})

	t.Run("broken bundle", func(t *testing.T) {
		bundle := filepath.Join(dir, "broken.yaml")
		writeFile(t, bundle, "slots: [not, a, map\n")

		_, _, err := execute(t, "--source", bundle, "list")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrContentParse))
	})
}

func TestConfigSource(t *testing.T) {
	dir := isolate(t)

	slots := filepath.Join(dir, "from-config")
	writeFile(t, filepath.Join(slots, "only.md"), "only\n")
	writeFile(t, filepath.Join(dir, "config", "config.toml"), "[content]\nsource = \""+filepath.ToSlash(slots)+"\"\n")

	stdout, _, err := execute(t, "check", "only")
	require.NoError(t, err)
	assert.Equal(t, "ok only\n", stdout)

	t.Run("flag wins over config", func(t *testing.T) {
		stdout, _, err := execute(t, "--source", filepath.Join(dir, "missing-dir"), "list")
		require.Error(t, err)
		assert.Empty(t, stdout)
	})
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	t.Run("topics lists every slot", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "topics")
		require.NoError(t, err)
		for _, key := range catalog.Slots() {
			assert.Contains(t, stdout, "  "+key+"\n")
		}
	})

	t.Run("topics command matches help topics", func(t *testing.T) {
		viaHelp, _, err := execute(t, "help", "topics")
		require.NoError(t, err)
		viaCmd, _, err := execute(t, "topics")
		require.NoError(t, err)
		assert.Equal(t, viaHelp, viaCmd)
	})

	t.Run("help on a slot shows it", func(t *testing.T) {
		stdout, _, err := execute(t, "help", catalog.SlotWalkthrough)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "# "))
	})

	t.Run("help on a command", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "show")
		require.NoError(t, err)
		assert.Contains(t, stdout, preload.MsgShowLong)
	})
}

func TestHelpTopics_BrokenSource(t *testing.T) {
	dir := isolate(t)
	bundle := filepath.Join(dir, "broken.yaml")
	writeFile(t, bundle, "slots: [not, a, map\n")

	tests := []struct {
		name string
		args []string
	}{
		{"help on a slot", []string{"help", catalog.SlotTasks}},
		{"help topics", []string{"help", "topics"}},
		{"topics command", []string{"topics"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"--source", bundle}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrContentParse), "got %v", err)
			assert.NotContains(t, stdout, "No help topics available.")
		})
	}

	t.Run("command help still works", func(t *testing.T) {
		stdout, _, err := execute(t, "--source", bundle, "help", "show")
		require.NoError(t, err)
		assert.Contains(t, stdout, preload.MsgShowLong)
	})
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "preload version "))
}

func TestCompletion(t *testing.T) {
	isolate(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.NotEmpty(t, stdout)
		})
	}

	t.Run("unknown shell", func(t *testing.T) {
		_, _, err := execute(t, "completion", "tcsh")
		require.Error(t, err)
	})
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "slot not found")
	assert.Equal(t, "Error: [NOT_FOUND] slot not found", preload.RenderError(err, false))
}
