package organize

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestOrganize_NotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	touch(t, file)

	o := NewOrganizer(defaultClassifier())

	_, err := o.Organize(context.Background(), file, Options{})
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = o.Organize(context.Background(), filepath.Join(tmpDir, "nope"), Options{})
	assert.ErrorIs(t, err, ErrNotDirectory)

	// No partial log may appear next to the file
	assert.Len(t, childNames(t, tmpDir), 1)
}

func TestOrganize_MovesIntoBuckets(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "a.jpg"))
	touch(t, filepath.Join(tmpDir, "b.pdf"))
	touch(t, filepath.Join(tmpDir, "c"))
	touch(t, filepath.Join(tmpDir, "weird.xyz"))

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Processed)
	assert.FileExists(t, filepath.Join(tmpDir, "images", "a.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "docs", "b.pdf"))
	assert.FileExists(t, filepath.Join(tmpDir, NoExtBucket, "c"))
	assert.FileExists(t, filepath.Join(tmpDir, OtherBucket, "weird.xyz"))

	require.NotEmpty(t, result.LogPath)
	records, err := ParseLog(result.LogPath)
	require.NoError(t, err)
	assert.Len(t, records, 4)
	for _, rec := range records {
		assert.True(t, filepath.IsAbs(rec.Source))
		assert.True(t, filepath.IsAbs(rec.Dest))
		assert.FileExists(t, rec.Dest)
	}
}

func TestOrganize_DryRunTouchesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "a.jpg"))
	touch(t, filepath.Join(tmpDir, "b.pdf"))
	before := childNames(t, tmpDir)

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.True(t, result.DryRun)
	assert.Empty(t, result.LogPath, "dry run must not create a log")
	assert.Equal(t, before, childNames(t, tmpDir))

	// Planned destinations match what a real run would pick
	for _, action := range result.Actions {
		assert.Equal(t, StatusPreviewed, action.Status)
		assert.Equal(t, tmpDir, filepath.Dir(filepath.Dir(action.Dest)))
	}
}

func TestOrganize_DotfilesAreExtensionless(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, ".bashrc"))
	touch(t, filepath.Join(tmpDir, ".env.txt"))

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.FileExists(t, filepath.Join(tmpDir, NoExtBucket, ".bashrc"),
		"a dotfile's name is not an extension")
	assert.FileExists(t, filepath.Join(tmpDir, "docs", ".env.txt"),
		"a dotfile with a real extension classifies normally")
}

func TestOrganize_SkipsOwnLogs(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, LogPrefix+"20250101_000000.txt"))
	touch(t, filepath.Join(tmpDir, "a.jpg"))

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.FileExists(t, filepath.Join(tmpDir, LogPrefix+"20250101_000000.txt"),
		"logs from earlier runs stay put")
}

func TestOrganize_NonRecursiveIgnoresSubdirs(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0o755))
	touch(t, filepath.Join(tmpDir, "top.jpg"))
	touch(t, filepath.Join(tmpDir, "sub", "nested.jpg"))

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.FileExists(t, filepath.Join(tmpDir, "sub", "nested.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "images", "top.jpg"))
}

func TestOrganize_Recursive(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub", "deeper"), 0o755))
	touch(t, filepath.Join(tmpDir, "top.jpg"))
	touch(t, filepath.Join(tmpDir, "sub", "nested.pdf"))
	touch(t, filepath.Join(tmpDir, "sub", "deeper", "deep.mp3"))

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{Recurse: true})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.FileExists(t, filepath.Join(tmpDir, "images", "top.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "docs", "nested.pdf"))
	assert.FileExists(t, filepath.Join(tmpDir, "audio", "deep.mp3"))
}

func TestOrganize_RecursiveCollision(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0o755))
	touch(t, filepath.Join(tmpDir, "a.jpg"))
	touch(t, filepath.Join(tmpDir, "sub", "a.jpg"))

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{Recurse: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.FileExists(t, filepath.Join(tmpDir, "images", "a.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "images", "a (2).jpg"))
}

func TestOrganize_OnActionCallback(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "a.jpg"))
	touch(t, filepath.Join(tmpDir, "b.pdf"))

	var seen []MoveAction
	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{
		OnAction: func(a MoveAction) { seen = append(seen, a) },
	})
	require.NoError(t, err)

	require.Len(t, seen, result.Processed)
	for _, a := range seen {
		assert.Equal(t, StatusMoved, a.Status)
		assert.NotEmpty(t, a.Bucket)
	}
}

func TestOrganize_EmptyDir(t *testing.T) {
	tmpDir := t.TempDir()

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed)
	// A log is still created and closed for a live run, even if empty
	require.NotEmpty(t, result.LogPath)
	assert.FileExists(t, result.LogPath)
}

func TestOrganize_LogNameEmbedsPrefix(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "a.jpg"))

	o := NewOrganizer(defaultClassifier())
	result, err := o.Organize(context.Background(), tmpDir, Options{})
	require.NoError(t, err)

	base := filepath.Base(result.LogPath)
	assert.True(t, strings.HasPrefix(base, LogPrefix))
	assert.True(t, strings.HasSuffix(base, ".txt"))
	assert.Equal(t, tmpDir, filepath.Dir(result.LogPath), "log lives directly inside the root")
}
