package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndURL(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(base, "http://localhost:5000/uploads/")
	require.NoError(t, err)

	key, err := s.Upload(ctx, strings.NewReader("jpeg bytes"), "profile-photos/u-1/a.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "profile-photos/u-1/a.jpg", key)

	assert.FileExists(t, filepath.Join(base, "profile-photos", "u-1", "a.jpg"))

	url, err := s.GetURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/profile-photos/u-1/a.jpg", url)

	back, ok := s.KeyFromURL(url)
	assert.True(t, ok)
	assert.Equal(t, key, back)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key), "deleting twice is fine")

	_, err = os.Stat(filepath.Join(base, "profile-photos", "u-1", "a.jpg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalStorage_TraversalStaysInsideBase(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	key, err := s.Upload(ctx, strings.NewReader("x"), "../../etc/passwd", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "etc/passwd", key)

	_, err = s.Upload(ctx, strings.NewReader("x"), "..", "text/plain")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestLocalStorage_KeyFromURL(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:5000/uploads")
	require.NoError(t, err)

	for _, url := range []string{
		"https://lh3.googleusercontent.com/a/photo.jpg",
		"http://localhost:5000/uploads/",
		"http://localhost:5000/uploads/../secret.txt",
		"http://localhost:5000/uploadsx/a.jpg",
	} {
		_, ok := s.KeyFromURL(url)
		assert.False(t, ok, url)
	}
}
