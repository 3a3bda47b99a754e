// Package pager implements the external demand pager's fault-handling
// and replacement engine: the state machine relating a virtual page's
// residency, modification, and zero-fill status to the read/write enable
// bits a host mechanism consults on every access, plus the global clock
// (second-chance) replacement policy.
//
// The package never imports net/http or encoding/json — it is a library
// consumed by a host (cmd/pagerd wires one over HTTP), not a service
// itself. The host is responsible for serializing all calls: Pager keeps
// no internal lock, matching the single-threaded-cooperative model the
// pager is specified against.
package pager

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/list"
)

// Disk models the external disk backing store: one PAGESIZE-aligned
// block per slot, addressed by block number.
type Disk interface {
	ReadBlock(block int, dst []byte) error
	WriteBlock(block int, src []byte) error
}

// PhysMem models the physical memory array the host exposes to the
// pager: frames*PAGESIZE contiguous bytes, addressable one frame at a
// time.
type PhysMem interface {
	// Page returns the PAGESIZE-byte slice backing frame.
	Page(frame int) []byte
	// Zero clears frame's bytes to 0 without reading them from disk.
	Zero(frame int)
}

// Config fixes the pager's resource limits and arena geometry for the
// lifetime of a Pager. PageSize must be a power of two.
type Config struct {
	Frames    int
	Blocks    int
	PageSize  int
	ArenaBase uint64
	ArenaSize uint64
}

// Pager is the single process-wide object described in spec §9's "Global
// state" design note: free frame/block pools, the clock queue, the
// process registry, and the notion of a current process, all reachable
// from one value so the host interface can stay a thin set of entry
// points routing to it.
type Pager struct {
	cfg Config

	disk Disk
	mem  PhysMem
	log  *slog.Logger

	frames *pool
	blocks *pool
	clock  *list.Queue[*pageRecord]

	processes map[int]*processEntry
	current   *processEntry
}

// New constructs a Pager over cfg's geometry, acquiring frames and
// blocks from [0, cfg.Frames) and [0, cfg.Blocks) respectively. This is
// spec §4.2's init(frames, blocks), generalized to also fix the page
// size and arena geometry the rest of the engine needs; there is no
// separate Init method because a Pager value is only ever useful fully
// configured.
func New(cfg Config, disk Disk, mem PhysMem, log *slog.Logger) (*Pager, error) {
	if cfg.PageSize <= 0 || cfg.PageSize&(cfg.PageSize-1) != 0 {
		return nil, fmt.Errorf("pager: page size %d is not a power of two", cfg.PageSize)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pager{
		cfg:       cfg,
		disk:      disk,
		mem:       mem,
		log:       log,
		frames:    newPool(cfg.Frames),
		blocks:    newPool(cfg.Blocks),
		clock:     list.NewQueue[*pageRecord](),
		processes: make(map[int]*processEntry),
	}, nil
}

func (p *Pager) pageOffsetMask() uint64 {
	return uint64(p.cfg.PageSize) - 1
}
