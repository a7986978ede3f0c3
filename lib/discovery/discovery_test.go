package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("void main() {}\n"), 0o644))
}

func TestDiscoverPairs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "lit", "basic.vert"))
	touch(t, filepath.Join(root, "lit", "basic.frag"))
	touch(t, filepath.Join(root, "lit", "README.md"))
	touch(t, filepath.Join(root, "post", "blur.vert"))
	touch(t, filepath.Join(root, "post", "blur.frag"))

	pairs, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, ShaderPair{
		Dir:      filepath.Join(root, "lit"),
		Stem:     "basic",
		VertPath: filepath.Join(root, "lit", "basic.vert"),
		FragPath: filepath.Join(root, "lit", "basic.frag"),
	}, pairs[0])
	assert.Equal(t, "blur", pairs[1].Stem)
	assert.True(t, pairs[0].Complete())
	assert.True(t, pairs[1].Complete())
}

func TestDiscoverGroupsPerDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a", "quad.vert"))
	touch(t, filepath.Join(root, "b", "quad.frag"))

	pairs, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, filepath.Join(root, "a", "quad.vert"), pairs[0].VertPath)
	assert.Empty(t, pairs[0].FragPath)
	assert.Empty(t, pairs[1].VertPath)
	assert.Equal(t, filepath.Join(root, "b", "quad.frag"), pairs[1].FragPath)
}

func TestDiscoverOrphan(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "orphan.vert"))

	pairs, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "orphan", pairs[0].Stem)
	assert.False(t, pairs[0].Complete())
	assert.Empty(t, pairs[0].FragPath)
}

func TestDiscoverFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	touch(t, filepath.Join(other, "sky.vert"))
	touch(t, filepath.Join(other, "sky.frag"))
	if err := os.Symlink(other, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %s", err)
	}

	pairs, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, filepath.Join(root, "linked"), pairs[0].Dir)
	assert.True(t, pairs[0].Complete())
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscoverSymlinkToParent(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "fx", "glow.vert"))
	touch(t, filepath.Join(root, "fx", "glow.frag"))
	if err := os.Symlink(root, filepath.Join(root, "fx", "up")); err != nil {
		t.Skipf("symlinks unavailable: %s", err)
	}

	pairs, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, filepath.Join(root, "fx"), pairs[0].Dir)
}

func TestDiscoverSameDirectoryTwice(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a", "sky.vert"))
	touch(t, filepath.Join(root, "a", "sky.frag"))
	if err := os.Symlink(filepath.Join(root, "a"), filepath.Join(root, "b")); err != nil {
		t.Skipf("symlinks unavailable: %s", err)
	}

	pairs, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, filepath.Join(root, "a"), pairs[0].Dir)
}
