package runtime_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/testhelpers"
)

func TestGetContext(t *testing.T) {
	t.Run("resolves the repository root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		t.Setenv("PUSHIT_LOG_FILE", filepath.Join(t.TempDir(), "pushit.log"))

		sub := filepath.Join(scene.Dir, "nested")
		require.NoError(t, scene.Repo.CreateChange("x", "nested/file", true))

		var stdout bytes.Buffer
		ctx, err := runtime.GetContext(context.Background(), runtime.Options{
			WorkingDir: sub,
			Stdin:      &bytes.Buffer{},
			Stdout:     &stdout,
			Stderr:     &stdout,
		})
		require.NoError(t, err)
		defer func() { require.NoError(t, ctx.Close()) }()

		expected, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		actual, err := filepath.EvalSymlinks(ctx.RepoRoot)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
		require.NotNil(t, ctx.Git)
		require.NotNil(t, ctx.Prompter)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		t.Setenv("PUSHIT_LOG_FILE", filepath.Join(t.TempDir(), "pushit.log"))

		_, err := runtime.GetContext(context.Background(), runtime.Options{
			WorkingDir: t.TempDir(),
			Stdin:      &bytes.Buffer{},
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
		})
		require.ErrorContains(t, err, "not a git repository")
	})
}
