package datafile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	CHUNK_FILE = "temp_cookie_chunk_%d.tmp"
)

// ChunkFile is a temporary cookie chunk written by a single compile
// worker. Records are buffered and flushed on Sync or Close; the merge
// step reads the finished chunk back with AppendTo and disposes of it
// with Remove.
type ChunkFile struct {
	writer *os.File
	buf    *bufio.Writer
	id     int
	path   string

	offset int
}

// New creates the chunk file for the given index inside dir, truncating
// any stale leftover from a previous run.
func New(dir string, index int) (*ChunkFile, error) {
	path := filepath.Join(dir, fmt.Sprintf(CHUNK_FILE, index))
	writer, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening chunk file for writing: %w", err)
	}

	cf := &ChunkFile{
		writer: writer,
		buf:    bufio.NewWriter(writer),
		id:     index,
		path:   path,
	}

	return cf, nil
}

// ID returns the chunk index of the file.
func (c *ChunkFile) ID() int {
	return c.id
}

// Path returns the location of the chunk file on disk.
func (c *ChunkFile) Path() string {
	return c.path
}

// Size returns the number of bytes written to the chunk so far.
func (c *ChunkFile) Size() int {
	return c.offset
}

// WriteRecord appends one serialised cookie record to the chunk,
// terminated by a newline.
func (c *ChunkFile) WriteRecord(record string) error {
	n, err := c.buf.WriteString(record)
	if err != nil {
		return err
	}
	if err := c.buf.WriteByte('\n'); err != nil {
		return err
	}

	c.offset += n + 1

	return nil
}

// Sync flushes the write buffer and the filesystem's in-memory buffers
// to disk.
func (c *ChunkFile) Sync() error {
	if err := c.buf.Flush(); err != nil {
		return err
	}
	return c.writer.Sync()
}

// Close flushes any buffered records and closes the file descriptor of
// the underlying chunk file.
func (c *ChunkFile) Close() error {
	if err := c.buf.Flush(); err != nil {
		return err
	}
	return c.writer.Close()
}

// AppendTo copies the finished chunk into dst. The chunk must have been
// closed before it is read back.
func (c *ChunkFile) AppendTo(dst io.Writer) error {
	reader, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("error opening chunk file for reading: %w", err)
	}
	defer reader.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		return fmt.Errorf("error appending chunk file: %w", err)
	}

	return nil
}

// Remove deletes the chunk file from the filesystem.
func (c *ChunkFile) Remove() error {
	return os.Remove(c.path)
}
