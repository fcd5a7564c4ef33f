package local

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	ref, err := store.Save(context.Background(), "logo.PNG", strings.NewReader("binary-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, PublicBase+"/"), "reference must resolve under the static base")
	assert.True(t, strings.HasSuffix(ref, ".png"), "extension is kept, lower-cased")

	onDisk := filepath.Join(dir, path.Base(ref))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "binary-bytes", string(data))

	require.NoError(t, store.Remove(context.Background(), ref))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestSave_GeneratesDistinctNames(t *testing.T) {
	store := New(t.TempDir())

	ref1, err := store.Save(context.Background(), "logo.png", strings.NewReader("a"))
	require.NoError(t, err)
	ref2, err := store.Save(context.Background(), "logo.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestSave_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := New(dir)

	_, err := store.Save(context.Background(), "logo.png", strings.NewReader("x"))
	require.NoError(t, err)
}

func TestRemove_MissingFile(t *testing.T) {
	store := New(t.TempDir())
	assert.Error(t, store.Remove(context.Background(), PublicBase+"/gone.png"))
}

func TestRemove_MalformedRef(t *testing.T) {
	store := New(t.TempDir())
	assert.Error(t, store.Remove(context.Background(), ""))
}
