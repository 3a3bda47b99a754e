// Package diskstore implements the pager's "disk" collaborator
// (disk_read/disk_write in spec §6) against a single file of fixed-size
// blocks, the same os.OpenFile + ReadAt/WriteAt-at-an-offset pattern the
// teacher's memoria/services/swap.go uses for its swap file, generalized
// from a variable-length per-process swap region to fixed PAGESIZE slots
// addressed by block number.
package diskstore

import (
	"fmt"
	"os"
)

// Store is a fixed number of pageSize-byte blocks backed by one file.
type Store struct {
	file     *os.File
	pageSize int
}

// Open opens (creating if necessary) the file at path and truncates it
// to hold exactly blocks slots of pageSize bytes.
func Open(path string, blocks, pageSize int) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("diskstore: opening %s: %w", path, err)
	}

	size := int64(blocks) * int64(pageSize)
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("diskstore: sizing %s to %d bytes: %w", path, size, err)
	}

	return &Store{file: f, pageSize: pageSize}, nil
}

// ReadBlock fills dst (which must be pageSize bytes) with block's
// contents.
func (s *Store) ReadBlock(block int, dst []byte) error {
	_, err := s.file.ReadAt(dst, int64(block)*int64(s.pageSize))
	return err
}

// WriteBlock writes src (which must be pageSize bytes) into block.
func (s *Store) WriteBlock(block int, src []byte) error {
	_, err := s.file.WriteAt(src, int64(block)*int64(s.pageSize))
	return err
}

// Close releases the underlying file handle.
func (s *Store) Close() error {
	return s.file.Close()
}
