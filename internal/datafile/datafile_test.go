package datafile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkFile(t *testing.T) {
	var (
		cf     *ChunkFile
		assert = assert.New(t)
	)

	// Create a temp directory for running tests.
	tmpDir, err := os.MkdirTemp("", "chunk")
	defer os.RemoveAll(tmpDir)

	assert.NoError(err)

	t.Run("New", func(t *testing.T) {
		cf, err = New(tmpDir, 3)
		assert.NoError(err)
		assert.Equal(3, cf.ID())
		assert.Equal(filepath.Join(tmpDir, fmt.Sprintf(CHUNK_FILE, 3)), cf.Path())
		assert.Equal(0, cf.Size())
	})

	t.Run("WriteRecord", func(t *testing.T) {
		assert.NoError(cf.WriteRecord("name=a;value=1"))
		assert.NoError(cf.WriteRecord("name=b;value=2"))

		// Each record costs its length plus the newline.
		assert.Equal(30, cf.Size())
	})

	t.Run("Sync", func(t *testing.T) {
		assert.NoError(cf.Sync())

		stat, err := os.Stat(cf.Path())
		assert.NoError(err)
		assert.Equal(int64(cf.Size()), stat.Size())
	})

	t.Run("Close", func(t *testing.T) {
		assert.NoError(cf.Close())
	})

	t.Run("AppendTo", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(cf.AppendTo(&buf))
		assert.Equal("name=a;value=1\nname=b;value=2\n", buf.String())
	})

	t.Run("Remove", func(t *testing.T) {
		assert.NoError(cf.Remove())

		_, err := os.Stat(cf.Path())
		assert.True(os.IsNotExist(err))
	})
}

func TestChunkFileTruncates(t *testing.T) {
	assert := assert.New(t)

	// Create a temp directory for running tests.
	tmpDir, err := os.MkdirTemp("", "chunk")
	defer os.RemoveAll(tmpDir)

	assert.NoError(err)

	// A stale chunk from a crashed run must not leak into the next one.
	stale, err := New(tmpDir, 0)
	assert.NoError(err)
	assert.NoError(stale.WriteRecord("stale record"))
	assert.NoError(stale.Close())

	fresh, err := New(tmpDir, 0)
	assert.NoError(err)
	assert.NoError(fresh.WriteRecord("fresh"))
	assert.NoError(fresh.Close())

	var buf bytes.Buffer
	assert.NoError(fresh.AppendTo(&buf))
	assert.Equal("fresh\n", buf.String())
}
