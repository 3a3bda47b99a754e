package pager

// PageTableEntry is the hardware-visible page-table entry format of
// spec §6: exactly frame, read-enable, and write-enable. It is always an
// output of the fault logic, never a cache of the PageRecord — see the
// "Hardware-visible vs logical permissions" design note in spec §9.
type PageTableEntry struct {
	Frame       int
	ReadEnable  bool
	WriteEnable bool
}

// processEntry is spec §3's ProcessEntry. records and table are both
// indexed by vpage and grow in lock-step in Extend: spec §3 invariant 8
// requires record keys to form the dense prefix [0, nextVPage), so a
// flat slice is the right shape — not the multi-level radix tree the
// teacher's own memoria module builds for its hardware page table (see
// DESIGN.md on why that structure doesn't survive into this pager).
type processEntry struct {
	pid int

	table   []PageTableEntry
	records []*pageRecord

	nextVAddr uint64
	nextVPage int
}
