package data

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/report_forge/app/report/internal/conf"
)

func newTestRepo(t *testing.T) (*PhotoRepo, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	d, cleanup, err := NewData(&conf.Upload{Dir: dir}, log.DefaultLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return NewPhotoRepo(d, log.DefaultLogger), dir
}

func TestNewData_CreatesDir(t *testing.T) {
	_, dir := newTestRepo(t)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPhotoRepo_Save(t *testing.T) {
	r, dir := newTestRepo(t)

	p1, err := r.Save("Team Photo.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	p2, err := r.Save("team photo.png", strings.NewReader("other"))
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.Equal(t, dir, filepath.Dir(p1))
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{12}\.png$`), filepath.Base(p1))

	got, err := os.ReadFile(p1)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), got)

	info, err := os.Stat(p1)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPhotoRepo_Remove(t *testing.T) {
	r, dir := newTestRepo(t)

	p, err := r.Save("a.jpg", strings.NewReader("jpg"))
	require.NoError(t, err)

	r.Remove(context.Background(), []string{p, filepath.Join(dir, "already-gone.png")})

	_, err = os.Stat(p)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	r.Remove(context.Background(), nil)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestPhotoRepo_SaveReadError(t *testing.T) {
	r, dir := newTestRepo(t)
	readErr := errors.New("connection reset")

	_, err := r.Save("a.png", io.MultiReader(strings.NewReader("partial"), failingReader{err: readErr}))
	assert.ErrorIs(t, err, readErr)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
