package pager

import (
	"fmt"

	"github.com/Workiva/go-datastructures/bitarray"
)

// Audit checks the universally-quantified invariants of spec §8 (P1–P5)
// against the pager's current state and returns a human-readable
// description of every violation found, empty if none. It is meant to
// be called between public operations, from tests and from cmd/pagerd's
// debug endpoint — never from inside the engine itself.
//
// Frame and block membership (P1, P2) is checked with a bitset rather
// than a linear "have I seen this index before" scan: each frame/block
// number is set at most once, and a duplicate SetBit on an
// already-set bit is the double-ownership violation, which scales to
// the pool sizes this pager is meant for better than an O(n^2) scan
// would.
func (p *Pager) Audit() []string {
	var violations []string

	violations = append(violations, p.auditFrames()...)
	violations = append(violations, p.auditBlocks()...)
	violations = append(violations, p.auditClock()...)
	violations = append(violations, p.auditPermissions()...)
	violations = append(violations, p.auditArenaDensity()...)

	return violations
}

// auditFrames checks P1: every frame number appears in exactly one of
// free_frames or a resident record's frame, and a frame never appears
// twice.
func (p *Pager) auditFrames() []string {
	var violations []string
	seen := bitarray.NewBitArray(uint64(p.cfg.Frames))

	markFrame := func(f int, context string) {
		if f < 0 || f >= p.cfg.Frames {
			violations = append(violations, fmt.Sprintf("P1: %s references out-of-range frame %d", context, f))
			return
		}
		already, _ := seen.GetBit(uint64(f))
		if already {
			violations = append(violations, fmt.Sprintf("P1: frame %d is owned twice (%s)", f, context))
		}
		_ = seen.SetBit(uint64(f))
	}

	for _, f := range p.frames.snapshot() {
		markFrame(f, "free pool")
	}

	residentCount := 0
	for _, proc := range p.processes {
		for _, rec := range proc.records {
			if rec.resident {
				residentCount++
				markFrame(rec.frame, fmt.Sprintf("pid %d vpage %d", rec.pid, rec.vpage))
			}
		}
	}

	if p.frames.len()+residentCount != p.cfg.Frames {
		violations = append(violations, fmt.Sprintf(
			"P1: free frames (%d) + resident records (%d) != total frames (%d)",
			p.frames.len(), residentCount, p.cfg.Frames))
	}

	return violations
}

// auditBlocks checks P2, the same shape as auditFrames but over every
// live record rather than only resident ones — a block is reserved for
// the lifetime of its record, resident or not.
func (p *Pager) auditBlocks() []string {
	var violations []string
	seen := bitarray.NewBitArray(uint64(p.cfg.Blocks))

	markBlock := func(b int, context string) {
		if b < 0 || b >= p.cfg.Blocks {
			violations = append(violations, fmt.Sprintf("P2: %s references out-of-range block %d", context, b))
			return
		}
		already, _ := seen.GetBit(uint64(b))
		if already {
			violations = append(violations, fmt.Sprintf("P2: block %d is owned twice (%s)", b, context))
		}
		_ = seen.SetBit(uint64(b))
	}

	for _, b := range p.blocks.snapshot() {
		markBlock(b, "free pool")
	}

	liveCount := 0
	for _, proc := range p.processes {
		for _, rec := range proc.records {
			liveCount++
			markBlock(rec.block, fmt.Sprintf("pid %d vpage %d", rec.pid, rec.vpage))
		}
	}

	if p.blocks.len()+liveCount != p.cfg.Blocks {
		violations = append(violations, fmt.Sprintf(
			"P2: free blocks (%d) + live records (%d) != total blocks (%d)",
			p.blocks.len(), liveCount, p.cfg.Blocks))
	}

	return violations
}

// auditClock checks P3: the multiset of resident records equals the
// multiset in the clock queue.
func (p *Pager) auditClock() []string {
	var violations []string

	inClock := make(map[*pageRecord]int)
	for _, rec := range p.clock.Snapshot() {
		inClock[rec]++
	}

	residentSeen := make(map[*pageRecord]int)
	for _, proc := range p.processes {
		for _, rec := range proc.records {
			if rec.resident {
				residentSeen[rec]++
			}
		}
	}

	for rec, n := range residentSeen {
		if inClock[rec] != n {
			violations = append(violations, fmt.Sprintf(
				"P3: resident pid %d vpage %d appears %d times in clock, expected %d",
				rec.pid, rec.vpage, inClock[rec], n))
		}
	}
	for rec, n := range inClock {
		if residentSeen[rec] != n {
			violations = append(violations, fmt.Sprintf(
				"P3: clock entry for pid %d vpage %d is not resident", rec.pid, rec.vpage))
		}
	}

	return violations
}

// auditPermissions checks P4: every write-enabled entry's record is
// resident and modified; every read-enabled entry's record is resident
// with a matching frame.
func (p *Pager) auditPermissions() []string {
	var violations []string

	for _, proc := range p.processes {
		for vpage, entry := range proc.table {
			if vpage >= len(proc.records) {
				continue
			}
			rec := proc.records[vpage]
			if entry.WriteEnable && (!rec.resident || !rec.modified) {
				violations = append(violations, fmt.Sprintf(
					"P4: pid %d vpage %d is write-enabled but resident=%v modified=%v",
					proc.pid, vpage, rec.resident, rec.modified))
			}
			if entry.ReadEnable && (!rec.resident || entry.Frame != rec.frame) {
				violations = append(violations, fmt.Sprintf(
					"P4: pid %d vpage %d is read-enabled but resident=%v entry.frame=%d record.frame=%d",
					proc.pid, vpage, rec.resident, entry.Frame, rec.frame))
			}
		}
	}

	return violations
}

// auditArenaDensity checks P5: nextVPage equals the record count, and
// record keys form the contiguous prefix [0, nextVPage).
func (p *Pager) auditArenaDensity() []string {
	var violations []string

	for _, proc := range p.processes {
		if proc.nextVPage != len(proc.records) {
			violations = append(violations, fmt.Sprintf(
				"P5: pid %d nextVPage=%d but has %d records", proc.pid, proc.nextVPage, len(proc.records)))
		}
		for i, rec := range proc.records {
			if rec.vpage != i {
				violations = append(violations, fmt.Sprintf(
					"P5: pid %d record at index %d has vpage %d", proc.pid, i, rec.vpage))
			}
		}
	}

	return violations
}
