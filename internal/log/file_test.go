package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyFile_Write(t *testing.T) {
	dir := t.TempDir()

	df, err := OpenDailyFile(dir)
	require.NoError(t, err)
	defer df.Close()

	_, err = df.Write([]byte(`{"msg":"test"}`))
	require.NoError(t, err)

	today := time.Now().Format(dayLayout)
	assert.Equal(t, filepath.Join(dir, today+".jsonl"), df.Path())

	content, err := os.ReadFile(df.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), `{"msg":"test"}`)

	target, err := os.Readlink(filepath.Join(dir, "latest"))
	require.NoError(t, err)
	assert.Equal(t, today+".jsonl", target)
}

func TestDailyFile_Rotates(t *testing.T) {
	dir := t.TempDir()

	df, err := OpenDailyFile(dir)
	require.NoError(t, err)
	defer df.Close()

	tomorrow := time.Now().AddDate(0, 0, 1)
	df.now = func() time.Time { return tomorrow }

	_, err = df.Write([]byte("next day\n"))
	require.NoError(t, err)

	want := filepath.Join(dir, tomorrow.Format(dayLayout)+".jsonl")
	assert.Equal(t, want, df.Path())
	content, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "next day\n", string(content))
}

func TestDailyFile_WriteAfterClose(t *testing.T) {
	df, err := OpenDailyFile(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, df.Close())

	_, err = df.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestCleanup(t *testing.T) {
	dir := t.TempDir()

	old := time.Now().AddDate(0, 0, -20).Format(dayLayout) + ".jsonl"
	recent := time.Now().AddDate(0, 0, -2).Format(dayLayout) + ".jsonl"
	other := "notes.txt"
	for _, name := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	Cleanup(dir, 14)

	assert.NoFileExists(t, filepath.Join(dir, old))
	assert.FileExists(t, filepath.Join(dir, recent))
	assert.FileExists(t, filepath.Join(dir, other))
}
