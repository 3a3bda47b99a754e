package pager

import (
	"fmt"
	"io"
	"log/slog"
)

// fakeDisk and fakeMem are minimal in-memory Disk/PhysMem doubles so the
// engine's tests exercise exactly the state machine in spec §4, without
// depending on the real mmap- and file-backed adapters in
// internal/physmem and internal/diskstore (those get their own tests).
type fakeDisk struct {
	pageSize int
	blocks   map[int][]byte
}

func newFakeDisk(pageSize int) *fakeDisk {
	return &fakeDisk{pageSize: pageSize, blocks: make(map[int][]byte)}
}

func (d *fakeDisk) ReadBlock(block int, dst []byte) error {
	data, ok := d.blocks[block]
	if !ok {
		// An uninitialized block's contents are undefined by spec
		// invariant 7; garbage (not zero) makes sure tests that rely on
		// zero-fill skipping the disk actually prove it.
		for i := range dst {
			dst[i] = 0xAA
		}
		return nil
	}
	copy(dst, data)
	return nil
}

func (d *fakeDisk) WriteBlock(block int, src []byte) error {
	buf := make([]byte, d.pageSize)
	copy(buf, src)
	d.blocks[block] = buf
	return nil
}

type fakeMem struct {
	pageSize int
	data     []byte
}

func newFakeMem(frames, pageSize int) *fakeMem {
	return &fakeMem{pageSize: pageSize, data: make([]byte, frames*pageSize)}
}

func (m *fakeMem) Page(frame int) []byte {
	start := frame * m.pageSize
	return m.data[start : start+m.pageSize]
}

func (m *fakeMem) Zero(frame int) {
	p := m.Page(frame)
	for i := range p {
		p[i] = 0
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const (
	testPageSize  = 8192
	testArenaBase = 0x60000000
)

func newTestPager(frames, blocks int) (*Pager, *fakeDisk, *fakeMem) {
	disk := newFakeDisk(testPageSize)
	mem := newFakeMem(frames, testPageSize)
	p, err := New(Config{
		Frames:    frames,
		Blocks:    blocks,
		PageSize:  testPageSize,
		ArenaBase: testArenaBase,
		ArenaSize: uint64(blocks) * testPageSize,
	}, disk, mem, discardLogger())
	if err != nil {
		panic(fmt.Sprintf("newTestPager: %v", err))
	}
	return p, disk, mem
}

func requireAudit(t interface{ Fatalf(string, ...any) }, p *Pager) {
	if violations := p.Audit(); len(violations) != 0 {
		t.Fatalf("invariant violations: %v", violations)
	}
}
